package app

import (
	"database/sql"

	"mlserve/internal/model"
	"mlserve/internal/platform/db"
	"mlserve/internal/platform/router"
	"mlserve/internal/platform/validation"
	"mlserve/internal/prediction"
)

type Provider struct {
	DB         *sql.DB
	Store      *prediction.Repository
	Classifier model.Classifier
	Validator  validation.Validator
	Router     router.Router
	TxMgr      db.TxManager
}

func newProvider(dbConn *sql.DB, classifier model.Classifier) *Provider {
	return &Provider{
		DB:         dbConn,
		Store:      prediction.NewRepository(dbConn),
		Classifier: classifier,
		Validator:  validation.NewPlaygroundValidator(),
		Router:     router.NewGoexpressRouter(),
		TxMgr:      db.NewSQLTxManager(dbConn),
	}
}
