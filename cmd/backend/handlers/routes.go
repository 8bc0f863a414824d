package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/testcase"
	"gorm.io/gorm"
)

// NewRouter builds the HTTP routes of the service.
func NewRouter(db *gorm.DB, service *testcase.Service, log logger.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(NewLoggingMiddleware(log).Handler)

	router.HandleFunc("/health", NewHealthHandler(db).Check).Methods("GET")

	caseHandler := NewTestCaseHandler(service, log)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/test-cases", caseHandler.List).Methods("GET")
	api.HandleFunc("/test-cases", caseHandler.Create).Methods("POST")
	api.HandleFunc("/test-cases/batch", caseHandler.FindByIDs).Methods("GET")
	api.HandleFunc("/test-cases/{id:[0-9]+}", caseHandler.GetByID).Methods("GET")
	api.HandleFunc("/test-cases/{id:[0-9]+}", caseHandler.Update).Methods("PUT")
	api.HandleFunc("/test-cases/{id:[0-9]+}", caseHandler.Delete).Methods("DELETE")
	api.HandleFunc("/test-cases/{id:[0-9]+}/steps", caseHandler.FindSteps).Methods("GET")
	api.HandleFunc("/test-cases/{id:[0-9]+}/copy", caseHandler.Copy).Methods("POST")

	api.HandleFunc("/public-steps/{id:[0-9]+}/test-cases", caseHandler.ListByPublicStep).Methods("GET")

	api.HandleFunc("/projects/{project_id:[0-9]+}/test-cases", caseHandler.ListByProject).Methods("GET")
	api.HandleFunc("/projects/{project_id:[0-9]+}/test-cases", caseHandler.DeleteByProject).Methods("DELETE")

	return router
}
