package api

import (
	"github.com/hmiyata/shindan/internal/db"
	"github.com/hmiyata/shindan/internal/registration"
	"github.com/hmiyata/shindan/internal/repository"
	"github.com/hmiyata/shindan/internal/session"
)

type Server struct {
	DB           *db.DB
	Sessions     *session.Store
	Leads        repository.LeadRepository
	Registration *registration.Service
}
