package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/goliatone/go-dynform/pkg/employees"
	"github.com/goliatone/go-dynform/pkg/form"
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
)

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.employees.List())
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	employee, ok := s.employees.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	employee, ok := s.decodeEmployee(w, r)
	if !ok {
		return
	}
	stored := s.employees.Add(employee)
	s.logger.InfoContext(r.Context(), "employee created", slog.Int("id", stored.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/v1/employees/%d", stored.ID))
	writeJSON(w, http.StatusCreated, stored)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := s.employees.Get(id); !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	employee, ok := s.decodeEmployee(w, r)
	if !ok {
		return
	}
	if err := s.employees.Update(id, employee); err != nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	updated, _ := s.employees.Get(id)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.employees.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeEmployee runs the request body through a fresh form state so HTTP
// submissions obey the same rules as interactive ones. It writes the error
// response itself and reports whether the caller should continue.
func (s *Server) decodeEmployee(w http.ResponseWriter, r *http.Request) (employees.Employee, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		s.logger.WarnContext(r.Context(), "invalid request body", slog.Any("error", err))
		return employees.Employee{}, false
	}

	state, err := s.newForm()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "form unavailable")
		s.logger.ErrorContext(r.Context(), "form build failed", slog.Any("error", err))
		return employees.Employee{}, false
	}

	for _, name := range sortedKeys(body) {
		if err := state.SetValue(name, body[name]); err != nil {
			s.metrics.submissions.WithLabelValues(s.schema.ScreenName, outcomeRejected).Inc()
			writeError(w, http.StatusBadRequest, err.Error())
			s.logger.DebugContext(r.Context(), "unknown field in submission", slog.String("field", name))
			return employees.Employee{}, false
		}
	}

	snapshot, err := state.Submit()
	var failure *form.ValidationFailure
	switch {
	case errors.As(err, &failure):
		s.metrics.submissions.WithLabelValues(s.schema.ScreenName, outcomeRejected).Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: failure.Messages(),
		})
		return employees.Employee{}, false
	case err != nil:
		writeError(w, http.StatusInternalServerError, "submit failed")
		s.logger.ErrorContext(r.Context(), "submit failed", slog.Any("error", err))
		return employees.Employee{}, false
	}

	employee, err := employees.FromSnapshot(snapshot, s.directory)
	if err != nil {
		s.metrics.submissions.WithLabelValues(s.schema.ScreenName, outcomeRejected).Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return employees.Employee{}, false
	}
	s.metrics.submissions.WithLabelValues(s.schema.ScreenName, outcomeAccepted).Inc()
	return employee, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
