package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hairizuan-noorazman/testcases/logger"
	"github.com/hairizuan-noorazman/testcases/testcase"
)

// TestCaseHandler handles test case-related requests.
type TestCaseHandler struct {
	service *testcase.Service
	logger  logger.Logger
}

// NewTestCaseHandler creates a new test case handler.
func NewTestCaseHandler(service *testcase.Service, log logger.Logger) *TestCaseHandler {
	return &TestCaseHandler{
		service: service,
		logger:  log,
	}
}

// CreateTestCaseRequest represents a test case creation request.
type CreateTestCaseRequest struct {
	ProjectID uint              `json:"projectId"`
	Platform  testcase.Platform `json:"platform"`
	Name      string            `json:"name"`
	ModuleID  uint              `json:"moduleId"`
	Version   string            `json:"version"`
	Designer  string            `json:"designer"`
	Des       string            `json:"des"`
}

// UpdateTestCaseRequest represents a test case update request.
type UpdateTestCaseRequest struct {
	Name     *string `json:"name,omitempty"`
	ModuleID *uint   `json:"moduleId,omitempty"`
	Version  *string `json:"version,omitempty"`
	Designer *string `json:"designer,omitempty"`
	Des      *string `json:"des,omitempty"`
}

// DeleteResponse reports whether anything was deleted.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func isValidationError(err error) bool {
	return errors.Is(err, testcase.ErrInvalidName) ||
		errors.Is(err, testcase.ErrInvalidProjectID) ||
		errors.Is(err, testcase.ErrInvalidPlatform)
}

// parsePlatform reads the platform query parameter. An empty value yields 0.
func parsePlatform(r *http.Request) (testcase.Platform, bool) {
	raw := r.URL.Query().Get("platform")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !testcase.Platform(n).Valid() {
		return 0, false
	}
	return testcase.Platform(n), true
}

// Create handles creating a new test case.
func (h *TestCaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTestCaseRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tc := &testcase.TestCase{
		ProjectID: req.ProjectID,
		Platform:  req.Platform,
		Name:      req.Name,
		ModuleID:  req.ModuleID,
		Version:   req.Version,
		Designer:  req.Designer,
		Des:       req.Des,
	}

	if err := h.service.Create(r.Context(), tc); err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to create test case")
		return
	}

	respondJSON(w, http.StatusCreated, tc)
}

// GetByID handles retrieving a test case.
func (h *TestCaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	tc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, testcase.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, "test case not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to get test case")
		return
	}

	respondJSON(w, http.StatusOK, tc)
}

// List handles listing test cases with optional project, platform and name filters.
func (h *TestCaseHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	platform, ok := parsePlatform(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid platform")
		return
	}

	opts := testcase.ListOptions{
		Platform: platform,
		Name:     r.URL.Query().Get("name"),
		Limit:    limit,
		Offset:   offset,
	}
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		projectID, err := parseID(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid project ID: must be a positive integer")
			return
		}
		opts.ProjectID = projectID
	}

	page, err := h.service.List(r.Context(), opts)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list test cases")
		return
	}

	respondJSON(w, http.StatusOK, NewPaginatedResponse(page.Items, page.Total, page.Limit, page.Offset))
}

// Update handles updating a test case.
func (h *TestCaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	var req UpdateTestCaseRequest
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var setters []testcase.UpdateSetter
	if req.Name != nil {
		setters = append(setters, testcase.SetName(*req.Name))
	}
	if req.ModuleID != nil {
		setters = append(setters, testcase.SetModuleID(*req.ModuleID))
	}
	if req.Version != nil {
		setters = append(setters, testcase.SetVersion(*req.Version))
	}
	if req.Designer != nil {
		setters = append(setters, testcase.SetDesigner(*req.Designer))
	}
	if req.Des != nil {
		setters = append(setters, testcase.SetDes(*req.Des))
	}

	if err := h.service.Update(r.Context(), id, setters...); err != nil {
		if errors.Is(err, testcase.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, "test case not found")
			return
		}
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update test case")
		return
	}

	tc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get updated test case")
		return
	}

	respondJSON(w, http.StatusOK, tc)
}

// Delete handles deleting a test case, its suite memberships and step ownership.
func (h *TestCaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete test case")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "test case not found")
		return
	}

	respondSuccess(w, "test case deleted successfully")
}

// FindSteps handles building the run plan of a test case.
func (h *TestCaseHandler) FindSteps(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	plan, err := h.service.FindSteps(r.Context(), id)
	if err != nil {
		if errors.Is(err, testcase.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, "test case not found")
			return
		}
		h.logger.Error(r.Context(), "failed to build run plan", map[string]interface{}{
			"error":        err.Error(),
			"test_case_id": id,
		})
		respondError(w, http.StatusInternalServerError, "failed to get test case steps")
		return
	}

	respondJSON(w, http.StatusOK, plan)
}

// Copy handles deep-copying a test case.
func (h *TestCaseHandler) Copy(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDOrRespond(w, r, "id", "test case")
	if !ok {
		return
	}

	clone, err := h.service.Copy(r.Context(), id)
	if err != nil {
		if errors.Is(err, testcase.ErrTestCaseNotFound) {
			respondError(w, http.StatusNotFound, "test case not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to copy test case")
		return
	}

	respondJSON(w, http.StatusCreated, clone)
}

// FindByIDs handles fetching several test cases at once.
func (h *TestCaseHandler) FindByIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.service.FindByIDs(r.Context(), ids)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to find test cases")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// ListByPublicStep handles listing the cases that reference a public step.
func (h *TestCaseHandler) ListByPublicStep(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDOrRespond(w, r, "id", "public step")
	if !ok {
		return
	}

	items, err := h.service.ListByPublicStepsID(r.Context(), id)
	if err != nil {
		h.logger.Error(r.Context(), "failed to list test cases by public step", map[string]interface{}{
			"error":           err.Error(),
			"public_steps_id": id,
		})
		respondError(w, http.StatusInternalServerError, "failed to list test cases")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// ListByProject handles listing a project's test cases for one platform.
func (h *TestCaseHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseIDOrRespond(w, r, "project_id", "project")
	if !ok {
		return
	}

	platform, ok := parsePlatform(r)
	if !ok || platform == 0 {
		respondError(w, http.StatusBadRequest, "platform is required")
		return
	}

	items, err := h.service.ListByProjectAndPlatform(r.Context(), projectID, platform)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list test cases")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// DeleteByProject handles deleting every test case of a project.
func (h *TestCaseHandler) DeleteByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseIDOrRespond(w, r, "project_id", "project")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteByProjectID(r.Context(), projectID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete test cases")
		return
	}

	respondJSON(w, http.StatusOK, DeleteResponse{Deleted: deleted})
}
