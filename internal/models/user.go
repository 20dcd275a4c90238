// Package models contains data structures for the application's domain models.
package models

// UserTheme holds the presentation settings a user applies to their profile
// page. The core treats every field as opaque; themes are copied verbatim on
// update.
type UserTheme struct {
	BackgroundURL   string `json:"backgroundUrl"`
	BackgroundColor string `json:"backgroundColor"`
	FontFamily      string `json:"fontFamily"`
	TextColor       string `json:"textColor"`
	HeaderColor     string `json:"headerColor"`
	PanelColor      string `json:"panelColor"`
	MusicURL        string `json:"musicUrl,omitempty"`
	CursorURL       string `json:"cursorUrl,omitempty"`
	BorderRadius    string `json:"borderRadius,omitempty"`
}

// User represents a member of the Retrospace network.
//
// Followers and Following are mirrored edge lists: B appears in A.Following
// exactly when A appears in B.Followers. Both sides are denormalized onto
// their owning records, so a follow toggle writes two users.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl"`
	Tagline   string    `json:"tagline"`
	Bio       string    `json:"bio,omitempty"`
	Mood      string    `json:"mood"`
	IsOnline  bool      `json:"isOnline"`
	// TopFriends is display-only ordering; ids are not validated against
	// existence.
	TopFriends []string  `json:"topFriends,omitempty"`
	Theme      UserTheme `json:"theme"`
	IsAdmin    bool      `json:"isAdmin,omitempty"`
	IsBanned   bool      `json:"isBanned,omitempty"`
	// BannedUntil is advisory metadata in epoch milliseconds; nil means a
	// permanent ban. Expiry is never enforced automatically.
	BannedUntil  *int64   `json:"bannedUntil,omitempty"`
	BlockedUsers []string `json:"blockedUsers"`
	Followers    []string `json:"followers"`
	Following    []string `json:"following"`
}

// Follows reports whether the user follows the given user id.
func (u *User) Follows(id string) bool {
	return containsID(u.Following, id)
}

// FollowedBy reports whether the given user id follows this user.
func (u *User) FollowedBy(id string) bool {
	return containsID(u.Followers, id)
}

// HasBlocked reports whether the user has blocked the given user id.
func (u *User) HasBlocked(id string) bool {
	return containsID(u.BlockedUsers, id)
}

// Clone returns a deep copy of the user. Interaction handlers mutate clones
// so the in-memory snapshot stays untouched until a write round-trips.
func (u *User) Clone() *User {
	c := *u
	c.TopFriends = append([]string(nil), u.TopFriends...)
	c.BlockedUsers = append([]string(nil), u.BlockedUsers...)
	c.Followers = append([]string(nil), u.Followers...)
	c.Following = append([]string(nil), u.Following...)
	if u.BannedUntil != nil {
		until := *u.BannedUntil
		c.BannedUntil = &until
	}
	return &c
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
