// Package web serves the HTTP side channel: weapon downloads and live
// player updates over websockets.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/services/player"
)

// HeaderUserID carries the opaque caller identity
const HeaderUserID = "X-User-Id"

const writeTimeout = 10 * time.Second

// Config holds dependencies for the web handler
type Config struct {
	PlayerService player.Service
	// CheckOrigin decides which websocket origins are accepted; nil accepts same-origin only
	CheckOrigin func(r *http.Request) bool
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil || c.PlayerService == nil {
		return errors.InvalidArgument("player service is required")
	}
	return nil
}

// Handler serves the HTTP routes
type Handler struct {
	playerService player.Service
	upgrader      websocket.Upgrader
}

// New creates a web handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		playerService: cfg.PlayerService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}, nil
}

// Router returns the routes of the handler
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	api := r.PathPrefix("/v1alpha1").Subrouter()
	api.HandleFunc("/sessions/{sessionID}/weapons/{index:[0-9]+}.json", h.exportWeapon).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionID}/weapons/{index:[0-9]+}.png", h.weaponCard).Methods(http.MethodGet)
	api.HandleFunc("/players/{playerID}/watch", h.watchPlayer).Methods(http.MethodGet)
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) exportWeapon(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, h.playerService.ExportWeapon)
}

func (h *Handler) weaponCard(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, h.playerService.RenderWeaponCard)
}

type exportFunc func(ctx context.Context, input *player.ExportWeaponInput) (*player.ExportOutput, error)

func (h *Handler) download(w http.ResponseWriter, r *http.Request, export exportFunc) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(r.Context(), w, errors.InvalidArgumentf("invalid weapon index %q", vars["index"]))
		return
	}

	out, err := export(r.Context(), &player.ExportWeaponInput{
		SessionID: vars["sessionID"],
		UserID:    r.Header.Get(HeaderUserID),
		Index:     index,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Type", out.File.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.File.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.File.Data)))
	_, _ = w.Write(out.File.Data)
}

// watchPlayer pushes one JSON PlayerEvent per document update until either
// side goes away.
func (h *Handler) watchPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, err := h.playerService.WatchPlayer(ctx, &player.WatchPlayerInput{PlayerID: playerID})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request
		slog.WarnContext(ctx, "websocket upgrade failed",
			"player_id", playerID,
			"error", err.Error())
		return
	}
	defer func() { _ = conn.Close() }()

	// The reader only notices the peer closing.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for event := range events {
		msg := &fabulav1alpha1.PlayerEvent{
			PlayerID: event.PlayerID,
			Deleted:  event.Player == nil,
		}
		if event.Player != nil {
			data, err := json.Marshal(event.Player)
			if err != nil {
				slog.ErrorContext(ctx, "failed to encode player update",
					"player_id", playerID,
					"error", err.Error())
				return
			}
			msg.Player = data
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(msg); err != nil {
			slog.DebugContext(ctx, "websocket watcher gone",
				"player_id", playerID,
				"error", err.Error())
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == errors.CodeInternal {
		slog.ErrorContext(ctx, "request failed", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.HTTPStatus())
	_ = json.NewEncoder(w).Encode(errorBody{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}
