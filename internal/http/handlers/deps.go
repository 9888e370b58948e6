package handlers

import (
	"emunah/internal/config"
	"emunah/internal/services"
	"emunah/internal/store"
)

type Deps struct {
	ProductHandler   *ProductHandler
	ClientHandler    *ClientHandler
	QuoteHandler     *QuoteHandler
	OrderHandler     *OrderHandler
	DashboardHandler *DashboardHandler
	SettingsHandler  *SettingsHandler
	UploadHandler    *UploadHandler
	AuthHandler      *AuthHandler
}

func NewDeps(st store.Storage, cfg config.Config) *Deps {
	quoteSvc := services.NewQuoteService(st)
	orderSvc := services.NewOrderService(st)
	clientSvc := services.NewClientService(st)
	dashSvc := services.NewDashboardService(st)
	authSvc := services.NewAuthService(st)

	return &Deps{
		ProductHandler:   &ProductHandler{Store: st},
		ClientHandler:    &ClientHandler{Store: st, Clients: clientSvc},
		QuoteHandler:     &QuoteHandler{Store: st, Quotes: quoteSvc},
		OrderHandler:     &OrderHandler{Store: st, Orders: orderSvc},
		DashboardHandler: &DashboardHandler{Dashboard: dashSvc},
		SettingsHandler:  &SettingsHandler{Store: st},
		UploadHandler:    &UploadHandler{Dir: cfg.UploadDir},
		AuthHandler:      &AuthHandler{Auth: authSvc},
	}
}
