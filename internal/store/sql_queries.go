package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/mirror-gallery/models"
)

var userColumns = []string{
	"uid",
	"username",
	"access_token",
	"refresh_token",
	"expires_at",
	"expires",
}

var postColumns = []string{
	"p.id",
	"p.attachment_id",
	"p.timeline_id",
	"p.content_type",
	"p.content_path",
	"p.created_at",
	"p.user_uid",
	"u.username",
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns(userColumns...).
		Values(user.UID, user.Username, user.AccessToken, user.RefreshToken, user.ExpiresAt, user.Expires).
		ToSql()
}

// buildSelectUserQuery selects a single user by a unique column.
func buildSelectUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

// buildUpdateTokensQuery rotates the token fields. An empty refresh token
// leaves the stored one in place.
func buildUpdateTokensQuery(b sq.StatementBuilderType, uid string, tokens models.TokenSet) (string, []any, error) {
	var u models.User
	tokens.ApplyTo(&u)

	q := b.Update("users").
		Set("access_token", u.AccessToken).
		Set("expires_at", u.ExpiresAt).
		Set("expires", u.Expires)
	if u.RefreshToken != "" {
		q = q.Set("refresh_token", u.RefreshToken)
	}

	return q.Where(sq.Eq{"uid": uid}).ToSql()
}

func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert("posts").
		Columns("attachment_id", "timeline_id", "content_type", "content_path", "created_at", "user_uid").
		Values(post.AttachmentID, post.TimelineID, post.ContentType, post.ContentPath, post.CreatedAt.UTC(), post.UserUID).
		Suffix("RETURNING id").
		ToSql()
}

// buildListPostsQuery lists posts newest first. An empty uid lists all users,
// a zero limit lists everything.
func buildListPostsQuery(b sq.StatementBuilderType, uid string, limit uint64) (string, []any, error) {
	q := b.Select(postColumns...).
		From("posts p").
		Join("users u ON u.uid = p.user_uid").
		OrderBy("p.created_at DESC", "p.id DESC")

	if uid != "" {
		q = q.Where(sq.Eq{"p.user_uid": uid})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	return q.ToSql()
}
