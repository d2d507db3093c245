package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"projecthub/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	projects service.ProjectService
	logger   logrus.FieldLogger
}

func NewHandler(users service.UserService, projects service.ProjectService, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:    users,
		projects: projects,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestLogger(h.logger), h.authGate())

	api := router.Group("/api")
	{
		api.POST("/users/signup", h.signup)
		api.POST("/users/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	protected := api.Group("", requireUser())
	{
		protected.POST("/projects", h.createProject)
		protected.GET("/projects/:id", h.getProject)
		protected.PUT("/projects/:id", h.modifyProject)
		protected.DELETE("/projects/:id", h.deleteProject)
		protected.GET("/users/:username/projects", h.listUserProjects)
		protected.GET("/public-projects", h.listOthersPublic)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticationResponse carries the bearer token handed out on signup and login.
type AuthenticationResponse struct {
	JWT string `json:"jwt"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, err := h.users.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, AuthenticationResponse{JWT: token})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, AuthenticationResponse{JWT: token})
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	project, err := h.projects.Create(c.Request.Context(), currentUser(c), req.toInput())
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, projectToResponse(*project))
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.projects.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projectToResponse(*project))
}

func (h *Handler) modifyProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	project, err := h.projects.Modify(c.Request.Context(), currentUser(c), id, req.toInput())
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projectToResponse(*project))
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listUserProjects(c *gin.Context) {
	projects, err := h.projects.ListForUser(c.Request.Context(), currentUser(c), c.Param("username"))
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) listOthersPublic(c *gin.Context) {
	projects, err := h.projects.ListOthersPublic(c.Request.Context(), currentUser(c))
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid project id")
		return 0, false
	}
	return id, true
}
