package api

import (
	"fmt"
	"net/http"

	"github.com/ardentnum/mpint/mpint"
	"github.com/ardentnum/mpint/service"
)

type parsedOperand struct {
	v *mpint.Int
}

func toResultResponse(r service.Result) ResultResponse {
	return ResultResponse{Decimal: r.Decimal, Hex: r.Hex}
}

func (s *Server) parseOperand(w http.ResponseWriter, name string, op Operand) (*parsedOperand, bool) {
	v, err := service.ParseOperand(op.Value, op.Radix)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid operand %q: %v", name, err))
		return nil, false
	}
	return &parsedOperand{v}, true
}

// handleAdd handles POST /api/v1/add
func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req BinaryOpRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	b, ok := s.parseOperand(w, "b", req.B)
	if !ok {
		return
	}
	result, err := s.service.Add(a.v, b.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleSub handles POST /api/v1/sub
func (s *Server) handleSub(w http.ResponseWriter, r *http.Request) {
	var req BinaryOpRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	b, ok := s.parseOperand(w, "b", req.B)
	if !ok {
		return
	}
	result, err := s.service.Sub(a.v, b.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleMul handles POST /api/v1/mul
func (s *Server) handleMul(w http.ResponseWriter, r *http.Request) {
	var req BinaryOpRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	b, ok := s.parseOperand(w, "b", req.B)
	if !ok {
		return
	}
	result, err := s.service.Mul(a.v, b.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleDivMod handles POST /api/v1/divmod
func (s *Server) handleDivMod(w http.ResponseWriter, r *http.Request) {
	var req BinaryOpRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	b, ok := s.parseOperand(w, "b", req.B)
	if !ok {
		return
	}
	result, err := s.service.DivMod(a.v, b.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, DivModResponse{
		Quotient:  toResultResponse(result.Quotient),
		Remainder: toResultResponse(result.Remainder),
	})
}

// handleGCD handles POST /api/v1/gcd
func (s *Server) handleGCD(w http.ResponseWriter, r *http.Request) {
	var req BinaryOpRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	b, ok := s.parseOperand(w, "b", req.B)
	if !ok {
		return
	}
	result, err := s.service.GCD(a.v, b.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleInvMod handles POST /api/v1/invmod
func (s *Server) handleInvMod(w http.ResponseWriter, r *http.Request) {
	var req InvModRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	n, ok := s.parseOperand(w, "n", req.N)
	if !ok {
		return
	}
	result, err := s.service.InvMod(a.v, n.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleExpMod handles POST /api/v1/modexp
func (s *Server) handleExpMod(w http.ResponseWriter, r *http.Request) {
	var req ExpModRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, ok := s.parseOperand(w, "a", req.A)
	if !ok {
		return
	}
	e, ok := s.parseOperand(w, "e", req.E)
	if !ok {
		return
	}
	n, ok := s.parseOperand(w, "n", req.N)
	if !ok {
		return
	}
	result, err := s.service.ExpMod(a.v, e.v, n.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleIsPrime handles POST /api/v1/isprime
func (s *Server) handleIsPrime(w http.ResponseWriter, r *http.Request) {
	var req IsPrimeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	x, ok := s.parseOperand(w, "x", req.X)
	if !ok {
		return
	}
	result, err := s.service.IsPrime(x.v)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, IsPrimeResponse{IsPrime: result.IsPrime})
}

// handleGenPrime handles POST /api/v1/genprime
func (s *Server) handleGenPrime(w http.ResponseWriter, r *http.Request) {
	var req GenPrimeRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Bits <= 0 {
		writeError(w, http.StatusBadRequest, "bits must be positive")
		return
	}
	result, err := s.service.GenPrime(req.Bits, req.Safe)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toResultResponse(result))
}

// handleConvert handles POST /api/v1/convert
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	x, ok := s.parseOperand(w, "x", req.X)
	if !ok {
		return
	}
	result, err := s.service.Convert(x.v, req.OutputRadix)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ConvertResponse{Value: result.Value, Radix: result.Radix})
}

// handleHealth handles GET /api/v1/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
