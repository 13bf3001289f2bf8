package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DriesFaems/interview-generator-students/internal/access"
	"github.com/DriesFaems/interview-generator-students/internal/crew"
	"github.com/DriesFaems/interview-generator-students/internal/interviewer"
)

const (
	pageTitle       = "Autonomous Customer Interviewer"
	pageDescription = "This app is designed to help you conduct customer interviews. It uses the Llama 3 model on Groq to generate questions, " +
		"execute the interview and summarize the interview. For more information, contact Dries Faems at https://www.linkedin.com/in/dries-faems-0371569/"
	startHint = "Please click the button to start the interview"
)

type Handler struct {
	Service *interviewer.Service
	// ModelInfo отдается в /metrics рядом со счетчиками
	ModelInfo map[string]interface{}
}

type interviewForm struct {
	Email           string `form:"email"`
	APIKey          string `form:"api_key"`
	Painpoint       string `form:"painpoint"`
	CustomerProfile string `form:"customer_profile"`
	PriorLearnings  string `form:"prior_learnings"`
}

type pageData struct {
	Title       string
	Description string
	Email       string
	Message     string
	Unlocked    bool
	Hint        string
	Form        interviewForm
	Outputs     []crew.TaskOutput
	RunID       string
	Error       string
}

func newPage(email string) pageData {
	return pageData{
		Title:       pageTitle,
		Description: pageDescription,
		Email:       access.Normalize(email),
	}
}

// Index рендерит форму; с ?email= проверяет доступ и открывает остальные поля
func (h *Handler) Index(c *gin.Context) {
	page := newPage(c.Query("email"))

	decision, err := h.Service.CheckAccess(c.Request.Context(), page.Email)
	if err != nil {
		h.renderError(c, page, err)
		return
	}

	switch decision {
	case access.DecisionDenied:
		page.Message = access.DeniedMessage
	case access.DecisionGranted:
		page.Unlocked = true
		page.Hint = startHint
	}

	c.HTML(http.StatusOK, "page.html", page)
}

// StartInterview запускает интервью и выводит результаты задач по порядку
func (h *Handler) StartInterview(c *gin.Context) {
	var form interviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "page.html", newPage(""))
		return
	}

	page := newPage(form.Email)
	page.Form = form
	page.Form.APIKey = ""

	result, err := h.Service.Start(c.Request.Context(), interviewer.Request{
		Email:           form.Email,
		APIKey:          form.APIKey,
		Painpoint:       form.Painpoint,
		CustomerProfile: form.CustomerProfile,
		PriorLearnings:  form.PriorLearnings,
	})

	switch {
	case errors.Is(err, interviewer.ErrEmptyEmail):
		c.HTML(http.StatusOK, "page.html", page)
	case errors.Is(err, interviewer.ErrAccessDenied):
		page.Message = access.DeniedMessage
		c.HTML(http.StatusForbidden, "page.html", page)
	case errors.Is(err, interviewer.ErrMissingAPIKey):
		page.Unlocked = true
		page.Message = "Please provide your Groq API Key"
		c.HTML(http.StatusBadRequest, "page.html", page)
	case err != nil:
		h.renderError(c, page, err)
	default:
		page.Unlocked = true
		page.Outputs = result.Outputs
		page.RunID = result.RunID
		c.HTML(http.StatusOK, "page.html", page)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"metrics": h.Service.Metrics().GetSnapshot(),
		"model":   h.ModelInfo,
	})
}

func (h *Handler) renderError(c *gin.Context, page pageData, err error) {
	log.Printf("Ошибка обработки %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	page.Error = err.Error()
	c.HTML(http.StatusInternalServerError, "page.html", page)
}
