package core

import (
	"sort"

	"github.com/arthur-debert/appsel/pkg/display"
	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/arthur-debert/appsel/pkg/logging"
)

// Mutation actions, as reported in results
const (
	ActionSetDefault   = "set-default"
	ActionClearDefault = "clear-default"
	ActionAdd          = "add"
	ActionRemove       = "remove"
	ActionDisable      = "disable"
	ActionEnable       = "enable"
)

func (s *Session) result(action, contentType, appID string, changed bool) *display.MutationResult {
	logger := logging.GetLogger("core")
	logger.Info().
		Str("action", action).
		Str("mimetype", contentType).
		Str("app", appID).
		Bool("changed", changed).
		Msg("Mutation finished")
	return &display.MutationResult{
		Action:  action,
		Type:    contentType,
		App:     appID,
		Changed: changed,
		Path:    s.Store.WritablePath(),
	}
}

func requireType(contentType string) error {
	if contentType == "" {
		return errors.New(errors.ErrInvalidInput, "content type is required")
	}
	return nil
}

// SetDefault makes appID the default for contentType
func (s *Session) SetDefault(contentType, appID string) (*display.MutationResult, error) {
	if err := requireType(contentType); err != nil {
		return nil, err
	}
	if err := s.requireApp(appID); err != nil {
		return nil, err
	}
	changed, err := s.Store.SetDefault(contentType, appID)
	return s.result(ActionSetDefault, contentType, appID, changed), err
}

// ClearDefault drops the user's default for contentType
func (s *Session) ClearDefault(contentType string) (*display.MutationResult, error) {
	if err := requireType(contentType); err != nil {
		return nil, err
	}
	changed, err := s.Store.ClearDefault(contentType)
	return s.result(ActionClearDefault, contentType, "", changed), err
}

// AddAssociation associates appID with contentType
func (s *Session) AddAssociation(contentType, appID string) (*display.MutationResult, error) {
	if err := requireType(contentType); err != nil {
		return nil, err
	}
	if err := s.requireApp(appID); err != nil {
		return nil, err
	}
	changed, err := s.Store.AddAssociation(contentType, appID)
	return s.result(ActionAdd, contentType, appID, changed), err
}

// RemoveAssociation drops a custom association made by the user
func (s *Session) RemoveAssociation(contentType, appID string) (*display.MutationResult, error) {
	if err := requireType(contentType); err != nil {
		return nil, err
	}
	changed, err := s.Store.RemoveAssociation(contentType, appID)
	return s.result(ActionRemove, contentType, appID, changed), err
}

// DisableAssociation hides appID from the candidates of contentType
func (s *Session) DisableAssociation(contentType, appID string) (*display.MutationResult, error) {
	if err := requireType(contentType); err != nil {
		return nil, err
	}
	changed, err := s.Store.DisableAssociation(contentType, appID)
	return s.result(ActionDisable, contentType, appID, changed), err
}

// EnableAssociation undoes DisableAssociation
func (s *Session) EnableAssociation(contentType, appID string) (*display.MutationResult, error) {
	if err := requireType(contentType); err != nil {
		return nil, err
	}
	changed, err := s.Store.EnableAssociation(contentType, appID)
	return s.result(ActionEnable, contentType, appID, changed), err
}

// SetDefaultsByApp makes appID the default for each of contentTypes, or for
// every enabled type it supports when none are given. It stops at the first
// write failure.
func (s *Session) SetDefaultsByApp(appID string, contentTypes []string) (*display.MutationsResult, error) {
	if err := s.requireApp(appID); err != nil {
		return nil, err
	}

	if len(contentTypes) == 0 {
		for t, status := range s.Resolver.SupportedTypes(appID) {
			if !status.Disabled {
				contentTypes = append(contentTypes, t)
			}
		}
		sort.Strings(contentTypes)
	}

	result := &display.MutationsResult{Results: []display.MutationResult{}}
	for _, t := range contentTypes {
		r, err := s.SetDefault(t, appID)
		if r != nil {
			result.Results = append(result.Results, *r)
		}
		if err != nil {
			return result, err
		}
	}
	return result, nil
}
