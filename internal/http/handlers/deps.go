package handlers

import (
	"time"

	"shophood/internal/services"
	"shophood/internal/store"
)

type Deps struct {
	AuthHandler     *AuthHandler
	SearchHandler   *SearchHandler
	BusinessHandler *BusinessHandler
	AdsHandler      *AdsHandler
	MessageHandler  *MessageHandler
	GeoHandler      *GeoHandler
}

func NewDeps(st *store.Store, auth *services.AuthService) *Deps {
	catalogSvc := services.NewCatalogService(st)
	bizSvc := services.NewBusinessService(st)
	msgSvc := services.NewMessagingService(st)
	geoSvc := services.NewGeoService(300 * time.Millisecond)

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: auth},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		BusinessHandler: &BusinessHandler{Biz: bizSvc},
		AdsHandler:      &AdsHandler{Biz: bizSvc, Messaging: msgSvc},
		MessageHandler:  &MessageHandler{Messaging: msgSvc},
		GeoHandler:      &GeoHandler{Geo: geoSvc},
	}
}
