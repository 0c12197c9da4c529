package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/selector"
	"github.com/lk16/reversi/internal/services"
)

const (
	analysisTimeout = 2 * time.Second
)

// Conn is the part of a websocket connection the handler uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	services *services.Services
	ws       Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case EventAnalysisRequest:
		return h.handleAnalysisRequest(req)
	case EventSelectRequest:
		return h.handleSelectRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection until reading or writing fails.
// Well-formed requests that fail are answered with an error message and keep the
// connection open. Messages that are not valid JSON end the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return err
		}

		outgoing := &Outgoing{ID: req.ID}

		data, err := h.handleMessage(req)
		if err != nil {
			outgoing.Error = err.Error()
		} else {
			outgoing.Data = data
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleAnalysisRequest(req *Incoming) (*models.MovesResponse, error) {
	var reqData models.BoardRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws analysis request unmarshal error: %w", err)
	}

	if err := reqData.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), analysisTimeout)
	defer cancel()

	repo := repository.NewAnalysisRepositoryFromServices(h.services)

	analysis, cached, err := repo.Analyze(ctx, reqData.Board, reqData.Color)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze board: %w", err)
	}

	return &models.MovesResponse{Analysis: analysis, Cached: cached}, nil
}

func (h *Handler) handleSelectRequest(req *Incoming) (*models.SelectResponse, error) {
	var reqData models.SelectRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws select request unmarshal error: %w", err)
	}

	if err := reqData.Validate(); err != nil {
		return nil, err
	}

	sel, err := selector.New(reqData.Strategy, reqData.Seed)
	if err != nil {
		return nil, err
	}

	move, err := sel.Select(reqData.Board, reqData.Color)
	if err != nil {
		return nil, err
	}

	return &models.SelectResponse{Move: move, Strategy: sel.Name()}, nil
}
