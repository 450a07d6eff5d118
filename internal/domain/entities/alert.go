package entities

// Severity classifies a user-facing alert.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// AlertPresentation is the fixed presentation for a severity: modal title,
// icon key and style class.
type AlertPresentation struct {
	Title string
	Icon  string
	Style string
}

var alertPresentations = map[Severity]AlertPresentation{
	SeveritySuccess: {Title: "¡Operación Exitosa!", Icon: "check-circle", Style: "success"},
	SeverityWarning: {Title: "Advertencia Necesaria", Icon: "exclamation-triangle", Style: "warning"},
	SeverityError:   {Title: "Error de Proceso", Icon: "times-circle", Style: "error"},
	SeverityInfo:    {Title: "Información Importante", Icon: "info-circle", Style: "info"},
}

// PresentationFor looks up the presentation for a severity. Unknown
// severities fall back to info, matching the alert modal's default branch.
func PresentationFor(severity Severity) AlertPresentation {
	if p, ok := alertPresentations[severity]; ok {
		return p
	}
	return alertPresentations[SeverityInfo]
}
