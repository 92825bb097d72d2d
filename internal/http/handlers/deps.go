package handlers

import (
	"feedbackhub/internal/auth"
	"feedbackhub/internal/repos"
	"feedbackhub/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler     *AuthHandler
	FeedbackHandler *FeedbackHandler
}

func NewDeps(db *sqlx.DB, tokens *auth.Manager) *Deps {
	userRepo := repos.NewUserRepo(db)
	fbRepo := repos.NewFeedbackRepo(db)

	authSvc := &services.AuthService{Users: userRepo, Tokens: tokens}
	fbSvc := services.NewFeedbackService(fbRepo)

	return &Deps{
		AuthHandler:     &AuthHandler{Auth: authSvc},
		FeedbackHandler: &FeedbackHandler{Feedback: fbSvc},
	}
}
