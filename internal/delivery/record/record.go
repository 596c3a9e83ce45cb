package record

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"gonotation/internal/bootstrap"
	"gonotation/internal/domain/game"
	"gonotation/internal/errors"
	"gonotation/internal/httpresponse"
	recorduc "gonotation/internal/usecase/record"
	"gonotation/internal/utils"
)

const (
	defaultBoardSize   = 19
	defaultMaxSGFBytes = 1 << 20
)

type RecordHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	recordUC *recorduc.RecordUseCase
	upgrader websocket.Upgrader
}

func NewRecordHandler(cfg bootstrap.Config, log *zap.SugaredLogger, recordUC *recorduc.RecordUseCase) *RecordHandler {
	if cfg.MaxSGFBytes <= 0 {
		cfg.MaxSGFBytes = defaultMaxSGFBytes
	}
	return &RecordHandler{
		cfg:      cfg,
		log:      log,
		recordUC: recordUC,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return cfg.IsLocalCors || r.Header.Get("Origin") == "" },
		},
	}
}

func (h *RecordHandler) Routes(r chi.Router) {
	r.Post("/branches", h.HandleBranches)
	r.Get("/branches/stream", h.HandleBranchStream)
	r.Post("/mainline", h.HandleMainLine)
	r.Post("/normalize", h.HandleNormalize)
	r.Get("/gtp/to", h.HandleToGTP)
	r.Get("/gtp/from", h.HandleFromGTP)
}

func (h *RecordHandler) HandleBranches(w http.ResponseWriter, r *http.Request) {
	var req game.RecordRequest
	if err := utils.DecodeJSONRequest(r, &req, h.cfg.MaxSGFBytes); err != nil {
		h.log.Debugw("bad branches request", "error", err)
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.recordUC.Branches(r.Context(), req.SGF)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.RequestID = uuid.New().String()

	h.log.Infow("branches enumerated", "request_id", resp.RequestID, "branches", len(resp.Branches))
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (h *RecordHandler) HandleMainLine(w http.ResponseWriter, r *http.Request) {
	var req game.RecordRequest
	if err := utils.DecodeJSONRequest(r, &req, h.cfg.MaxSGFBytes); err != nil {
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.recordUC.MainLine(r.Context(), req.SGF)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.RequestID = uuid.New().String()
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (h *RecordHandler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var req game.RecordRequest
	if err := utils.DecodeJSONRequest(r, &req, h.cfg.MaxSGFBytes); err != nil {
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.recordUC.Normalize(r.Context(), req.SGF)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.RequestID = uuid.New().String()
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

// HandleBranchStream reads one RecordRequest from the websocket and answers
// with a frame per variation followed by a Done frame.
func (h *RecordHandler) HandleBranchStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(h.cfg.MaxSGFBytes)

	var req game.RecordRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.log.Debugw("websocket read failed", "error", err)
		return
	}

	err = h.recordUC.StreamBranches(r.Context(), req.SGF, func(v game.Variation) error {
		return conn.WriteJSON(game.StreamMessage{Branch: &v})
	})
	if err != nil {
		h.log.Infow("branch stream stopped", "error", err)
		_ = conn.WriteJSON(game.StreamMessage{Error: err.Error()})
		return
	}
	_ = conn.WriteJSON(game.StreamMessage{Done: true})
}

func (h *RecordHandler) HandleToGTP(w http.ResponseWriter, r *http.Request) {
	size, ok := h.boardSize(w, r)
	if !ok {
		return
	}
	resp, err := h.recordUC.ToGTP(r.URL.Query().Get("point"), size)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (h *RecordHandler) HandleFromGTP(w http.ResponseWriter, r *http.Request) {
	size, ok := h.boardSize(w, r)
	if !ok {
		return
	}
	resp, err := h.recordUC.FromGTP(r.URL.Query().Get("move"), size)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (h *RecordHandler) boardSize(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("size")
	if raw == "" {
		return defaultBoardSize, true
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, "size must be an integer")
		return 0, false
	}
	return size, true
}

func (h *RecordHandler) writeError(w http.ResponseWriter, err error) {
	if isClientError(err) {
		httpresponse.WriteErrorWithStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Errorw("request failed", "error", err)
	httpresponse.WriteInternalErrorResponse(w)
}

func isClientError(err error) bool {
	for _, target := range []error{
		errors.ErrInvalidSGF,
		errors.ErrEmptyRecord,
		errors.ErrInvalidColor,
		errors.ErrInvalidCoordinate,
		errors.ErrEmptyString,
		errors.ErrOutOfBoard,
	} {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
