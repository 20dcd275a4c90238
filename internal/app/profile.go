package app

import (
	"context"

	"retrospace/internal/models"
)

// UpdateProfileField sets a single editable profile field on the viewer and
// persists the whole record. Unknown field names are rejected so typos fail
// loudly instead of silently dropping an edit.
func (a *App) UpdateProfileField(ctx context.Context, field, value string) (*models.User, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}

	switch field {
	case "tagline":
		v.Tagline = value
	case "bio":
		v.Bio = value
	case "mood":
		v.Mood = value
	case "avatarUrl":
		v.AvatarURL = value
	default:
		return nil, models.NewValidationError("Unknown profile field: " + field)
	}
	return a.saveViewer(ctx, v)
}

// UpdateThemeField sets a single theme property on the viewer's profile.
func (a *App) UpdateThemeField(ctx context.Context, field, value string) (*models.User, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}

	switch field {
	case "backgroundUrl":
		v.Theme.BackgroundURL = value
	case "backgroundColor":
		v.Theme.BackgroundColor = value
	case "fontFamily":
		v.Theme.FontFamily = value
	case "textColor":
		v.Theme.TextColor = value
	case "headerColor":
		v.Theme.HeaderColor = value
	case "panelColor":
		v.Theme.PanelColor = value
	case "musicUrl":
		v.Theme.MusicURL = value
	case "cursorUrl":
		v.Theme.CursorURL = value
	case "borderRadius":
		v.Theme.BorderRadius = value
	default:
		return nil, models.NewValidationError("Unknown theme field: " + field)
	}
	return a.saveViewer(ctx, v)
}

// SetTopFriends replaces the viewer's ordered top-friends list. Ids are not
// validated against existence; the list is display-only.
func (a *App) SetTopFriends(ctx context.Context, ids []string) (*models.User, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}
	v.TopFriends = append([]string(nil), ids...)
	return a.saveViewer(ctx, v)
}

// CycleTheme advances the viewer's theme to the next preset. A customized
// theme restarts the cycle at the first preset.
func (a *App) CycleTheme(ctx context.Context) (*models.User, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}
	v.Theme = nextTheme(v.Theme)
	return a.saveViewer(ctx, v)
}

// saveViewer persists the edited viewer record and reloads. The edit is
// optimistic: the viewer pointer is swapped immediately so a slow backend
// does not make the profile page flicker back to stale values.
func (a *App) saveViewer(ctx context.Context, v *models.User) (*models.User, error) {
	a.mu.Lock()
	a.viewer = v
	a.mu.Unlock()

	if err := a.gw.UpdateUser(ctx, v); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
