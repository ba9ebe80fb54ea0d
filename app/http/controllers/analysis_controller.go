package controllers

import (
	"net/http"

	"github.com/km-arc/go-curp/app/services"
	"github.com/km-arc/go-curp/curp"
	"github.com/km-arc/go-curp/framework/app"
	gohttp "github.com/km-arc/go-curp/framework/http"
	"github.com/km-arc/go-curp/framework/http/validation"
)

const indexView = "views/index"

// payloadRules bounds what the form and the API accept before any analysis
// runs.
var payloadRules = validation.Rules{"curp": "required|max:64"}

// AnalysisController serves the CURP form and the JSON analysis API.
type AnalysisController struct {
	app.Controller
	analyzer *services.Analyzer
	views    *gohttp.ViewEngine
	appName  string
}

func NewAnalysisController(analyzer *services.Analyzer, views *gohttp.ViewEngine, appName string) *AnalysisController {
	return &AnalysisController{analyzer: analyzer, views: views, appName: appName}
}

// indexPage is the data the index view renders.
type indexPage struct {
	AppName  string
	Analyzed bool
	CURP     string
	Tokens   []curp.Token
	Errors   []string
	Valid    bool
	Problem  string // rejected submission, shown instead of an analysis
}

// analysisResource is the JSON shape of one analysis.
type analysisResource struct {
	curp.Result
	Valid bool `json:"valid"`
}

func newAnalysisResource(res curp.Result) analysisResource {
	return analysisResource{Result: res, Valid: res.IsValid()}
}

type analyzeRequest struct {
	CURP string `json:"curp"`
}

// Index GET / renders the empty form.
func (c *AnalysisController) Index(w http.ResponseWriter, r *http.Request) {
	c.Response(w).View(c.views, http.StatusOK, indexView, indexPage{AppName: c.appName})
}

// Analyze POST /analizar analyzes the submitted form field and renders the
// tokens and messages below the form. Rejected submissions are re-rendered
// with the reason, or answered as JSON when the client speaks JSON.
func (c *AnalysisController) Analyze(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	page := indexPage{AppName: c.appName}

	var body analyzeRequest
	if err := req.Bind(&body); err != nil {
		if req.IsJSON() {
			res.Error(http.StatusBadRequest, "Invalid request body.")
			return
		}
		page.Problem = "Invalid request body."
		res.View(c.views, http.StatusBadRequest, indexView, page)
		return
	}

	v := validation.Make(map[string]string{"curp": body.CURP}, payloadRules)
	if v.Fails() {
		if req.IsJSON() {
			res.ValidationError(v.Errors())
			return
		}
		page.Problem = v.Errors().First("curp")
		res.View(c.views, http.StatusUnprocessableEntity, indexView, page)
		return
	}

	result := c.analyzer.Analyze(body.CURP)
	if req.IsJSON() {
		res.Success(newAnalysisResource(result))
		return
	}
	page.Analyzed = true
	page.CURP = result.Input
	page.Tokens = result.Tokens
	page.Errors = result.Errors
	page.Valid = result.IsValid()
	res.View(c.views, http.StatusOK, indexView, page)
}

// Store POST /api/v1/analyze analyzes {"curp": "..."}. An invalid CURP is
// still a 200: the rule violations are the answer.
func (c *AnalysisController) Store(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	var body analyzeRequest
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, "Invalid request body.")
		return
	}
	c.respond(res, body.CURP)
}

// Show GET /api/v1/analyze/{curp}.
func (c *AnalysisController) Show(w http.ResponseWriter, r *http.Request) {
	c.respond(c.Response(w), c.Request(r).RouteParam("curp"))
}

func (c *AnalysisController) respond(res *gohttp.Response, input string) {
	v := validation.Make(map[string]string{"curp": input}, payloadRules)
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}
	res.Success(newAnalysisResource(c.analyzer.Analyze(input)))
}

// States GET /api/v1/states lists the valid birth-state codes.
func (c *AnalysisController) States(w http.ResponseWriter, r *http.Request) {
	c.Response(w).Success(curp.StateCodes())
}

// NotFound answers unknown API routes with the JSON error envelope.
func (c *AnalysisController) NotFound(w http.ResponseWriter, r *http.Request) {
	c.Response(w).NotFound()
}

// MethodNotAllowed answers known API routes hit with the wrong verb.
func (c *AnalysisController) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	c.Response(w).MethodNotAllowed()
}

// Health GET /health.
func (c *AnalysisController) Health(w http.ResponseWriter, r *http.Request) {
	c.Response(w).JSON(http.StatusOK, map[string]string{"status": "ok"})
}
