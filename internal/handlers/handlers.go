package handlers

import (
	"net/http"

	"github.com/hobbyconnect/server/internal/config"
	"github.com/hobbyconnect/server/internal/push"
	"github.com/hobbyconnect/server/internal/recommend"
	"github.com/hobbyconnect/server/internal/storage"
	ws "github.com/hobbyconnect/server/internal/websocket"

	"github.com/gorilla/websocket"
)

type Handlers struct {
	store          *storage.Storage
	hub            *ws.Hub
	config         config.Config
	recommender    *recommend.Service
	meetupNotifier *push.MeetupNotifier
	wsUpgrader     websocket.Upgrader
}

func New(store *storage.Storage, hub *ws.Hub, cfg config.Config, recommender *recommend.Service, meetupNotifier *push.MeetupNotifier) *Handlers {
	return &Handlers{
		store:          store,
		hub:            hub,
		config:         cfg,
		recommender:    recommender,
		meetupNotifier: meetupNotifier,
		wsUpgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

const defaultListLimit = 50
