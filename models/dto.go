package models

type SignUpRequest struct {
	Credentials SignUpCredentials `json:"credentials" binding:"required"`
}

type SignUpCredentials struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type SignInRequest struct {
	Credentials SignInCredentials `json:"credentials" binding:"required"`
}

type SignInCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	Passwords PasswordChange `json:"passwords" binding:"required"`
}

type PasswordChange struct {
	Old string `json:"old" validate:"required"`
	New string `json:"new" validate:"required,min=6"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateArticleRequest enumerates the fields a client may set at creation.
// Author, counters and the voter log are not among them; the service assigns
// those from the authenticated identity.
type CreateArticleRequest struct {
	Article ArticleFields `json:"article" binding:"required"`
}

type ArticleFields struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

// UpdateArticleRequest carries a partial update. Blank fields are dropped
// before the update is applied so they never erase stored values; a fully
// blank payload is a valid no-op.
type UpdateArticleRequest struct {
	Article ArticleUpdateFields `json:"article"`
}

type ArticleUpdateFields struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// VoteRequest carries the intended new vote totals, not deltas, plus the
// voter name to append to the article's log.
type VoteRequest struct {
	Article VoteFields `json:"article"`
}

type VoteFields struct {
	Upvote    int    `json:"upvote"`
	Downvote  int    `json:"downvote"`
	VoterName string `json:"voter_name"`
}
