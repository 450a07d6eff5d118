package app

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"urbanfit-store/internal/catalog"
	"urbanfit-store/internal/config"
	"urbanfit-store/internal/domain/entities"
	"urbanfit-store/internal/infrastructure/console"
	"urbanfit-store/internal/infrastructure/download"
	"urbanfit-store/internal/infrastructure/kv"
	"urbanfit-store/internal/infrastructure/logger"
	"urbanfit-store/internal/infrastructure/storage"
	"urbanfit-store/internal/invoice"
	"urbanfit-store/internal/usecase"
)

type App struct {
	cfg    *config.Config
	logger *logger.Logger
}

func New(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: logger.NewLogger(),
	}
}

func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return New(cfg).Run()
}

func (a *App) Run() error {
	sessionID := uuid.New().String()
	a.logger.Info("Starting storefront session", "session_id", sessionID)

	store, err := a.initStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.logger.Error("Failed to close store", "error", err)
		}
	}()

	sink, err := download.NewFileSink(a.cfg.Downloads.Dir, a.logger)
	if err != nil {
		return err
	}

	view := console.NewView(os.Stdout)
	engine := usecase.NewCartUseCase(storage.NewCartStore(store, a.logger), view, a.logger)
	session := storage.NewSessionStore(kv.NewMemoryStore(), a.logger)
	coordinator := usecase.NewModalCoordinator(engine, usecase.NewAlertPresenter(view), session, view, a.logger)
	flow := usecase.NewCheckoutFlow(engine, coordinator, invoice.NewGenerator(time.Now), sink, a.logger)

	engine.Refresh()
	printUsage()

	return a.runEventLoop(engine, coordinator, flow)
}

func (a *App) initStore() (kv.Store, error) {
	if a.cfg.Store.Backend == "memory" {
		a.logger.Info("Using in-memory store, cart will not survive restarts")
		return kv.NewMemoryStore(), nil
	}
	return kv.NewBadgerStore(a.cfg.Store.DataDir, a.logger)
}

// runEventLoop is the single execution context every operation runs on, the
// stand-in for the page's UI event loop. Commands and the welcome timer post
// events; nothing mutates state from anywhere else.
func (a *App) runEventLoop(engine *usecase.CartUseCase, coordinator *usecase.ModalCoordinator, flow *usecase.CheckoutFlow) error {
	events := make(chan func(), 16)

	welcome := time.AfterFunc(a.cfg.Welcome.Delay, func() {
		events <- coordinator.ShowWelcome
	})
	defer welcome.Stop()

	done := make(chan struct{})
	go a.readCommands(events, done, engine, coordinator, flow)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event := <-events:
			event()
		case <-done:
			a.logger.Info("Session ended")
			return nil
		case sig := <-shutdown:
			a.logger.Info("Received shutdown signal", "signal", sig)
			return nil
		}
	}
}

func (a *App) readCommands(events chan<- func(), done chan<- struct{}, engine *usecase.CartUseCase, coordinator *usecase.ModalCoordinator, flow *usecase.CheckoutFlow) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		event, quit := a.dispatch(line, engine, coordinator, flow)
		if quit {
			break
		}
		if event != nil {
			events <- event
		}
	}
	close(done)
}

// dispatch maps one input line to the handler the matching page control
// would have invoked.
func (a *App) dispatch(line string, engine *usecase.CartUseCase, coordinator *usecase.ModalCoordinator, flow *usecase.CheckoutFlow) (func(), bool) {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "comprar":
		args := splitArgs(rest)
		if len(args) != 3 {
			fmt.Println("uso: comprar <producto> | <color> | <talla>")
			return nil, false
		}
		return func() { engine.AddItem(args[0], args[1], args[2]) }, false

	case "quitar":
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			fmt.Println("uso: quitar <id>")
			return nil, false
		}
		return func() { engine.RemoveItem(id) }, false

	case "carrito":
		return coordinator.OpenCart, false

	case "pagar":
		return coordinator.OpenCheckout, false

	case "confirmar":
		method := rest
		if !entities.ValidPaymentMethod(method) {
			a.logger.Warn("Unknown payment method, proceeding as unspecified", "method", method)
		}
		return func() { flow.SubmitPayment(method) }, false

	case "factura":
		return flow.DownloadInvoice, false

	case "tallas":
		args := splitArgs(rest)
		if len(args) != 2 {
			fmt.Println("uso: tallas <producto> | <tallas disponibles>")
			return nil, false
		}
		return func() { engine.CheckSizes(args[0], args[1]) }, false

	case "cerrar":
		overlay := entities.Overlay(rest)
		if !entities.ValidOverlay(overlay) {
			fmt.Println("uso: cerrar <cart|checkout|confirmation|welcome|alert>")
			return nil, false
		}
		return func() { coordinator.Close(overlay) }, false

	case "fondo":
		overlay := entities.Overlay(rest)
		if !entities.ValidOverlay(overlay) {
			fmt.Println("uso: fondo <cart|checkout|confirmation|welcome|alert>")
			return nil, false
		}
		return func() { coordinator.ClickBackdrop(overlay) }, false

	case "scroll":
		offset, err := strconv.Atoi(rest)
		if err != nil {
			fmt.Println("uso: scroll <px>")
			return nil, false
		}
		return func() { coordinator.HandleScroll(offset) }, false

	case "productos":
		return printProducts, false

	case "ayuda":
		return printUsage, false

	case "salir":
		return nil, true

	default:
		fmt.Printf("comando desconocido: %q (prueba 'ayuda')\n", verb)
		return nil, false
	}
}

// splitArgs separates pipe-delimited arguments, so product names keep their
// spaces.
func splitArgs(rest string) []string {
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func printProducts() {
	for _, name := range catalog.Products() {
		fmt.Printf("  %-22s %10d\n", name, catalog.PriceOf(name))
	}
}

func printUsage() {
	fmt.Println(`comandos:
  comprar <producto> | <color> | <talla>
  quitar <id>
  carrito
  pagar
  confirmar <card|pse|nequi>
  factura
  tallas <producto> | <tallas>
  cerrar <overlay> / fondo <overlay>
  scroll <px>
  productos / ayuda / salir`)
}
