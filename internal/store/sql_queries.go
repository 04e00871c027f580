package store

import (
	"github.com/Masterminds/squirrel"
)

// Query builders shared by both backends. Each takes the connection's
// statement builder so the generated placeholders match the driver
// ($1, $2, ... for PostgreSQL, ? for SQLite).

func buildInsertUserQuery(sb squirrel.StatementBuilderType, username, passwordHash, role string) (string, []any, error) {
	return sb.
		Insert("users").
		Columns("username", "password_hash", "role").
		Values(username, passwordHash, role).
		Suffix("RETURNING user_id, username, password_hash, role, created_at").
		ToSql()
}

func buildFindUserByUsernameQuery(sb squirrel.StatementBuilderType, username string) (string, []any, error) {
	return sb.
		Select("user_id", "username", "password_hash", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
}

func buildUpdatePasswordHashQuery(sb squirrel.StatementBuilderType, username, newHash string) (string, []any, error) {
	return sb.
		Update("users").
		Set("password_hash", newHash).
		Where(squirrel.Eq{"username": username}).
		ToSql()
}

func buildListUsersByRoleQuery(sb squirrel.StatementBuilderType, role string) (string, []any, error) {
	return sb.
		Select("user_id", "username", "password_hash", "role", "created_at").
		From("users").
		Where(squirrel.Eq{"role": role}).
		OrderBy("username ASC").
		ToSql()
}

func buildInsertAttendanceQuery(sb squirrel.StatementBuilderType, userID int64, date, status string) (string, []any, error) {
	return sb.
		Insert("attendance").
		Columns("user_id", "date", "status").
		Values(userID, date, status).
		Suffix("RETURNING record_id, user_id, date, status, created_at").
		ToSql()
}

func buildListAttendanceForUserQuery(sb squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.
		Select("record_id", "user_id", "date", "status", "created_at").
		From("attendance").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date ASC").
		ToSql()
}

func buildListAllAttendanceQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return sb.
		Select("record_id", "user_id", "date", "status", "created_at").
		From("attendance").
		OrderBy("user_id ASC", "date ASC").
		ToSql()
}
