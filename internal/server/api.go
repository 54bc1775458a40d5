package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// errMissingParam reports an absent query parameter.
var errMissingParam = errors.New("missing query parameter")

// apiFunc performs one API operation and returns the State it produced,
// which the handler answers with.
type apiFunc func(r *http.Request) (types.State, error)

func (s *Server) api(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := fn(r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}

// statusFor maps an operation error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyExists),
		errors.Is(err, types.ErrMissingPart),
		errors.Is(err, types.ErrMissingCurve):
		return http.StatusConflict
	case errors.Is(err, errMissingParam),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidStatType),
		errors.Is(err, types.ErrInvalidPartType),
		errors.Is(err, types.ErrInvalidRarity),
		errors.Is(err, types.ErrInvalidCompany),
		errors.Is(err, types.ErrInvalidLevel),
		errors.Is(err, types.ErrInvalidWeaponID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	entry := s.requestLog(r).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// query returns a required query parameter. An empty value is allowed.
func query(r *http.Request, key string) (string, error) {
	values := r.URL.Query()
	if !values.Has(key) {
		return "", fmt.Errorf("%w: %s", errMissingParam, key)
	}
	return values.Get(key), nil
}

func (s *Server) handleState(r *http.Request) (types.State, error) {
	return s.svc.State(), nil
}

func (s *Server) handleCharacterNew(r *http.Request) (types.State, error) {
	name, err := query(r, "name")
	if err != nil {
		return types.State{}, err
	}
	return s.svc.AddCharacter(name)
}

func (s *Server) handleCharacterRemove(r *http.Request) (types.State, error) {
	return s.svc.RemoveCharacter(r.PathValue("name"))
}

func (s *Server) handleStatIncrement(r *http.Request) (types.State, error) {
	return s.svc.IncrementStat(r.PathValue("name"), r.PathValue("stat"))
}

func (s *Server) handleStatDecrement(r *http.Request) (types.State, error) {
	return s.svc.DecrementStat(r.PathValue("name"), r.PathValue("stat"))
}

func (s *Server) handleStatToggle(r *http.Request) (types.State, error) {
	return s.svc.ToggleStat(r.PathValue("name"), r.PathValue("stat"))
}

func (s *Server) handleStatNew(r *http.Request) (types.State, error) {
	name, err := query(r, "name")
	if err != nil {
		return types.State{}, err
	}
	typ, err := query(r, "type")
	if err != nil {
		return types.State{}, err
	}
	return s.svc.AddStat(name, types.StatType(typ))
}

func (s *Server) handleStatRemove(r *http.Request) (types.State, error) {
	return s.svc.RemoveStat(r.PathValue("name"))
}

func (s *Server) handleWeaponBuild(r *http.Request) (types.State, error) {
	id, err := query(r, "id")
	if err != nil {
		return types.State{}, err
	}
	return s.svc.BuildWeapon(id)
}

func (s *Server) handleWeaponGenerate(r *http.Request) (types.State, error) {
	raw, err := query(r, "level")
	if err != nil {
		return types.State{}, err
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return types.State{}, fmt.Errorf("%w: %q", types.ErrInvalidLevel, raw)
	}
	return s.svc.GenerateWeapon(level)
}

func (s *Server) handleWeaponClear(r *http.Request) (types.State, error) {
	return s.svc.ClearWeapon(), nil
}

func (s *Server) handlePartInit(r *http.Request) (types.State, error) {
	st, _, err := s.svc.SeedCatalog()
	return st, err
}

func (s *Server) handlePartNew(r *http.Request) (types.State, error) {
	var fields [4]string
	for i, key := range []string{"name", "part", "rarity", "company"} {
		v, err := query(r, key)
		if err != nil {
			return types.State{}, err
		}
		fields[i] = v
	}

	return s.svc.AddPart(types.Part{
		Name:    fields[0],
		Details: r.URL.Query().Get("details"),
		Type:    types.PartType(fields[1]),
		Rarity:  types.Rarity(fields[2]),
		Company: types.Company(fields[3]),
	})
}

func (s *Server) handlePartRemove(r *http.Request) (types.State, error) {
	return s.svc.RemovePart(r.PathValue("name"))
}
