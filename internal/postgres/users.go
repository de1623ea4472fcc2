package postgres

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	cl "album-service/pkg/catalog"
)

const tableUsers = "users"

const (
	usersColumnID           = `"id"`
	usersColumnUsername     = `"username"`
	usersColumnEmail        = `"email"`
	usersColumnPasswordHash = `"password_hash"`
	usersColumnRole         = `"role"`
	usersColumnCreatedAt    = `"created_at"`
	usersColumnUpdatedAt    = `"updated_at"`
)

var usersColumns = []string{
	usersColumnID,
	usersColumnUsername,
	usersColumnEmail,
	usersColumnPasswordHash,
	usersColumnRole,
	usersColumnCreatedAt,
	usersColumnUpdatedAt,
}

const pqUniqueViolation = "23505"

// CreateUser inserts a new user record, mapping a username collision to
// ErrUsernameTaken.
func (p *Postgres) CreateUser(ctx context.Context, req cl.RegisterRequest, passwordHash string) (cl.User, error) {

	var r cl.User
	qv, err := buildCreateUserQuery(req, passwordHash)
	if err != nil {
		return r, errors.Wrap(err, "build create user query")
	}
	err = p.sqldb.GetContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return r, cl.ErrUsernameTaken
		}
		return r, errors.Wrap(err, "execute create user query")
	}
	return r, nil

}

func buildCreateUserQuery(req cl.RegisterRequest, passwordHash string) (QueryValues, error) {
	now := time.Now().UTC()
	q, args, err := psql.
		Insert(tableUsers).
		Columns(usersColumns...).
		Values(uuid.NewString(), req.Username, req.Email, passwordHash, req.Role, now, now).
		Suffix("RETURNING " + strings.Join(usersColumns, ", ")).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "create user build query into SQL string")
}

// GetUser fetches a user by id.
func (p *Postgres) GetUser(ctx context.Context, id string) (cl.User, error) {
	return p.getUser(ctx, sq.Eq{usersColumnID: id})
}

// GetUserByUsername fetches a user by exact username match.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (cl.User, error) {
	return p.getUser(ctx, sq.Eq{usersColumnUsername: username})
}

func (p *Postgres) getUser(ctx context.Context, where sq.Eq) (cl.User, error) {

	var user cl.User

	var r []cl.User
	qv, err := buildGetUserQuery(where)
	if err != nil {
		return user, errors.Wrap(err, "build get user query")
	}
	err = p.sqldb.SelectContext(ctx, &r, qv.query, qv.args...)
	if err != nil {
		return user, errors.Wrap(err, "execute get user query")
	}

	// If no rows are found, the principal does not resolve.
	if len(r) == 0 {
		return user, cl.ErrNotFound
	}
	return r[0], nil

}

func buildGetUserQuery(where sq.Eq) (QueryValues, error) {
	q, args, err := psql.
		Select(tableColumns(tableUsers, usersColumns)...).
		From(tableUsers).
		Where(where).
		ToSql()

	return QueryValues{q, args}, errors.Wrap(err, "get user build query into SQL string")
}
