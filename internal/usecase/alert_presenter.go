package usecase

import (
	"urbanfit-store/internal/domain/entities"
)

// AlertPresenter turns a (severity, message) pair into the rendered alert
// overlay content. A new alert replaces whatever is currently displayed;
// there is no queue.
type AlertPresenter struct {
	view View
}

func NewAlertPresenter(view View) *AlertPresenter {
	return &AlertPresenter{view: view}
}

func (p *AlertPresenter) Present(severity entities.Severity, message string) {
	p.view.RenderAlert(entities.PresentationFor(severity), message)
}
