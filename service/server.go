// Package service exposes the conversion engine over a small HTTP API. It
// is strictly a consumer of the core package: every conversion runs through
// the public checked tier, and overflow or divisibility failures map to
// HTTP status codes instead of panics.
package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	audiotime "github.com/bt-bridge/audio-time"
	"github.com/bt-bridge/audio-time/shared"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

type Config struct {
	Addr           string `json:"addr" yaml:"addr"`
	ReadTimeoutMs  int    `json:"read_timeout_ms" yaml:"read_timeout_ms"`
	WriteTimeoutMs int    `json:"write_timeout_ms" yaml:"write_timeout_ms"`
}

type Server struct {
	logger shared.LoggerAdapter
	cfg    *Config

	mu      sync.Mutex
	srv     *fasthttp.Server
	ln      net.Listener
	running bool

	ctx    context.Context
	cancel context.CancelCauseFunc
}

func NewServer(ctx context.Context, logger shared.LoggerAdapter, cfg *Config) (*Server, error) {
	if logger == nil {
		return nil, shared.ErrNoLogger
	}
	if cfg == nil || cfg.Addr == "" {
		return nil, shared.ErrNoConfig
	}
	ctx, cancel := context.WithCancelCause(ctx)
	return &Server{
		logger: logger,
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (s *Server) respectCtx() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
	}
	return nil
}

func (s *Server) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Addr returns the bound listen address, useful when the config asked for
// an ephemeral port.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.respectCtx(); err != nil {
		return fmt.Errorf("respecting server context: %w", err)
	}
	if s.running {
		return shared.ErrServerAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.cancel(fmt.Errorf("listening on %s: %w", s.cfg.Addr, err))
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln
	s.srv = &fasthttp.Server{
		Name:         "audio-time/" + shared.Version,
		Handler:      s.handler,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutMs) * time.Millisecond,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutMs) * time.Millisecond,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil {
			s.logger.Error("serving HTTP", err)
			s.cancel(fmt.Errorf("serving HTTP: %w", err))
		}
	}()
	s.running = true
	s.logger.Info("conversion server started", zap.String("addr", ln.Addr().String()))
	return nil
}

func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return shared.ErrServerNotStarted
	}
	if err := s.srv.Shutdown(); err != nil {
		s.logger.Error("shutting down HTTP server", err)
	}
	s.cancel(errors.New("server closed"))
	s.running = false
	return nil
}

func (s *Server) handler(ctx *fasthttp.RequestCtx) {
	reqId := uuid.NewString()
	logger := s.logger.With(
		zap.String("request_id", reqId),
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
	)
	switch {
	case string(ctx.Path()) == "/v1/convert" && ctx.IsPost():
		s.handleConvert(ctx, reqId, logger)
	case string(ctx.Path()) == "/v1/presets" && ctx.IsGet():
		s.handlePresets(ctx, reqId, logger)
	default:
		s.writeError(ctx, logger, fasthttp.StatusNotFound, reqId, errors.New("no such route"))
	}
}

func (s *Server) handleConvert(ctx *fasthttp.RequestCtx, reqId string, logger shared.LoggerAdapter) {
	req := new(ConvertRequest)
	if err := sonic.Unmarshal(ctx.PostBody(), req); err != nil {
		s.writeError(ctx, logger, fasthttp.StatusBadRequest, reqId, fmt.Errorf("unmarshaling request: %w", err))
		return
	}
	sys, err := req.resolveSystem()
	if err != nil {
		s.writeError(ctx, logger, fasthttp.StatusBadRequest, reqId, err)
		return
	}
	from, err := ParseUnit(req.From)
	if err != nil {
		s.writeError(ctx, logger, fasthttp.StatusBadRequest, reqId, err)
		return
	}
	to, err := ParseUnit(req.To)
	if err != nil {
		s.writeError(ctx, logger, fasthttp.StatusBadRequest, reqId, err)
		return
	}
	result, err := Convert(sys, from, to, req.Value)
	if err != nil {
		status := fasthttp.StatusBadRequest
		if errors.Is(err, audiotime.ErrOverflow) {
			status = fasthttp.StatusUnprocessableEntity
		}
		s.writeError(ctx, logger, status, reqId, err)
		return
	}
	logger.Info(
		"converted",
		zap.String("system", sys.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Uint64("value", req.Value),
		zap.Uint64("result", result),
	)
	s.writeJSON(ctx, logger, fasthttp.StatusOK, &ConvertResponse{
		RequestId: reqId,
		System:    sys,
		From:      from,
		To:        to,
		Value:     req.Value,
		Result:    result,
	})
}

func (s *Server) handlePresets(ctx *fasthttp.RequestCtx, reqId string, logger shared.LoggerAdapter) {
	s.writeJSON(ctx, logger, fasthttp.StatusOK, map[string]any{
		"request_id": reqId,
		"presets":    Presets,
	})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, logger shared.LoggerAdapter, status int, body any) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		logger.Error("marshaling response", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(payload)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, logger shared.LoggerAdapter, status int, reqId string, err error) {
	logger.Warn("request failed", zap.Int("status", status), zap.Error(err))
	s.writeJSON(ctx, logger, status, &ErrorResponse{RequestId: reqId, Error: err.Error()})
}
