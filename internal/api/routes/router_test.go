package routes_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/linskybing/logistics-go/internal/application"
	"github.com/linskybing/logistics-go/internal/domain/checklist"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/testutils"
	"github.com/linskybing/logistics-go/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
users:
  - {email: admin@bmt.test, password: secret1, first_name: Ada, last_name: Admin, role: admin}
  - {email: driver@bmt.test, password: secret1, first_name: Dan, last_name: Driver, role: driver}
  - {email: warehouse@bmt.test, password: secret1, first_name: Wendy, last_name: Warehouse, role: warehouse}
  - {email: exec@bmt.test, password: secret1, first_name: Eve, last_name: Exec, role: executive}
templates:
  - title: Pre-delivery inspection
    fields:
      - {name: driver_name, label: Driver name, type: text, required: true}
      - {name: vehicle_checked, label: Vehicle checked, type: checkbox, required: true}
`

type env struct {
	app    *testutils.TestApp
	anon   *testutils.HTTPClient
	tokens map[string]string
}

func setup(t *testing.T) *env {
	t.Helper()
	app := testutils.SetupRouter(t)

	data, err := application.ParseSeed([]byte(seedYAML))
	require.NoError(t, err)
	_, err = application.NewSeeder(app.Repos).Seed(context.Background(), data)
	require.NoError(t, err)

	e := &env{app: app, anon: testutils.NewHTTPClient(app.Router, ""), tokens: map[string]string{}}
	for _, who := range []string{"admin", "driver", "warehouse", "exec"} {
		resp, err := e.anon.POST("/auth/login", user.LoginInput{Email: who + "@bmt.test", Password: "secret1"})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
		var tok response.TokenResponse
		require.NoError(t, resp.Decode(&tok))
		e.tokens[who] = tok.Token
	}
	return e
}

func (e *env) as(who string) *testutils.HTTPClient {
	return e.anon.WithToken(e.tokens[who])
}

func decode[T any](t *testing.T, resp *testutils.Response, want int) T {
	t.Helper()
	require.Equal(t, want, resp.StatusCode, string(resp.Body))
	var v T
	require.NoError(t, resp.Decode(&v))
	return v
}

// createDelivery makes a task with a required transport checklist and a
// required warehouse document.
func (e *env) createDelivery(t *testing.T) (task.Task, task.Attachment, task.Attachment) {
	t.Helper()
	admin := e.as("admin")

	resp, err := admin.POST("/tasks", task.CreateTaskInput{
		CustomerName:    "Acme Feeds",
		DeliveryAddress: "Unit 4, Dock Road",
		ProductName:     "Layer Pellets",
		DocketNumber:    "D-10023",
		VehicleType:     task.VehicleTruck,
	})
	require.NoError(t, err)
	tk := decode[task.Task](t, resp, http.StatusCreated)

	resp, err = admin.GET("/checklist-templates")
	require.NoError(t, err)
	templates := decode[[]checklist.Template](t, resp, http.StatusOK)
	require.Len(t, templates, 1)

	resp, err = admin.POST("/tasks/"+tk.ID.String()+"/attachments", task.CreateAttachmentInput{
		AttachmentType:      task.AttachmentChecklist,
		Title:               "Inspection",
		ChecklistTemplateID: &templates[0].ID,
		AssignedTo:          task.DepartmentTransport,
	})
	require.NoError(t, err)
	cl := decode[task.Attachment](t, resp, http.StatusCreated)

	resp, err = admin.POST("/tasks/"+tk.ID.String()+"/attachments", task.CreateAttachmentInput{
		AttachmentType: task.AttachmentDocument,
		Title:          "Loading docket",
		AssignedTo:     task.DepartmentWarehouse,
	})
	require.NoError(t, err)
	doc := decode[task.Attachment](t, resp, http.StatusCreated)
	return tk, cl, doc
}

func TestAuth_RequiresToken(t *testing.T) {
	e := setup(t)

	resp, err := e.anon.GET("/tasks")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_LoginFailures(t *testing.T) {
	e := setup(t)

	resp, err := e.anon.POST("/auth/login", user.LoginInput{Email: "admin@bmt.test", Password: "wrong1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = e.anon.POST("/auth/login", map[string]string{"email": "not-an-email", "password": "x"})
	require.NoError(t, err)
	body := decode[response.ErrorResponse](t, resp, http.StatusBadRequest)
	assert.Contains(t, body.Fields, "email")
}

func TestAuth_PendingRegistrationCannotLogin(t *testing.T) {
	e := setup(t)

	resp, err := e.anon.POST("/auth/register", user.RegisterInput{Email: "new@bmt.test", Password: "secret1", FirstName: "Nia"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = e.anon.POST("/auth/login", user.LoginInput{Email: "new@bmt.test", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = e.anon.POST("/auth/register", user.RegisterInput{Email: "new@bmt.test", Password: "secret1", FirstName: "Nia"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSession_ReturnsNavigationForRole(t *testing.T) {
	e := setup(t)

	resp, err := e.as("driver").GET("/auth/session")
	require.NoError(t, err)
	session := decode[user.Session](t, resp, http.StatusOK)
	assert.Equal(t, user.RoleDriver, session.User.Role)
	assert.Equal(t, user.NavigationFor(user.RoleDriver), session.Navigation)
}

func TestRoles_Enforced(t *testing.T) {
	e := setup(t)

	resp, err := e.as("driver").POST("/tasks", task.CreateTaskInput{
		CustomerName: "x", DeliveryAddress: "x", ProductName: "x", DocketNumber: "x", VehicleType: task.VehicleTruck,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = e.as("driver").GET("/submissions")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = e.as("exec").GET("/my/checklists")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeliveryFlow(t *testing.T) {
	e := setup(t)
	tk, cl, doc := e.createDelivery(t)
	driver, warehouse, admin := e.as("driver"), e.as("warehouse"), e.as("admin")

	// required checkbox left unticked
	resp, err := driver.POST("/attachments/"+cl.ID.String()+"/submissions/checklist", submission.ChecklistInput{
		FormData: map[string]any{"driver_name": "Dan", "vehicle_checked": false},
	})
	require.NoError(t, err)
	errBody := decode[response.ErrorResponse](t, resp, http.StatusBadRequest)
	assert.Equal(t, "Please fill in all required fields", errBody.Error)
	assert.Contains(t, errBody.Fields, "vehicle_checked")

	resp, err = driver.POST("/attachments/"+cl.ID.String()+"/submissions/checklist", submission.ChecklistInput{
		FormData: map[string]any{"driver_name": "Dan", "vehicle_checked": true},
	})
	require.NoError(t, err)
	clSub := decode[submission.Submission](t, resp, http.StatusCreated)

	resp, err = driver.GET("/my/checklists?status=submitted")
	require.NoError(t, err)
	mine := decode[[]application.AttachmentStatus](t, resp, http.StatusOK)
	require.Len(t, mine, 1)
	assert.Equal(t, cl.ID, mine[0].ID)

	resp, err = warehouse.PostMultipart("/attachments/"+doc.ID.String()+"/submissions/document", nil, "file", "docket.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	docSub := decode[submission.Submission](t, resp, http.StatusCreated)

	resp, err = warehouse.GET("/submissions/" + docSub.ID.String() + "/file-url")
	require.NoError(t, err)
	url := decode[response.URLResponse](t, resp, http.StatusOK)
	assert.True(t, strings.HasPrefix(url.URL, "memory://"))

	// reject needs a comment
	resp, err = admin.POST("/submissions/"+docSub.ID.String()+"/review", submission.ReviewInput{Decision: submission.DecisionReject})
	require.NoError(t, err)
	errBody = decode[response.ErrorResponse](t, resp, http.StatusBadRequest)
	assert.Contains(t, errBody.Fields, "comments")

	resp, err = warehouse.POST("/submissions/"+clSub.ID.String()+"/review", submission.ReviewInput{Decision: submission.DecisionApprove})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	v := docSub.Version
	resp, err = admin.POST("/submissions/"+docSub.ID.String()+"/review", submission.ReviewInput{Decision: submission.DecisionApprove, ExpectedVersion: &v})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = admin.GET("/tasks/" + tk.ID.String())
	require.NoError(t, err)
	detail := decode[application.TaskDetail](t, resp, http.StatusOK)
	assert.Equal(t, task.StatusCompleted, detail.Status)
	assert.Equal(t, application.TaskProgress{Required: 2, RequiredApproved: 2}, detail.Progress)

	// a second review against the old version is stale
	resp, err = admin.POST("/submissions/"+docSub.ID.String()+"/review", submission.ReviewInput{Decision: submission.DecisionFlag, Comments: "recheck", ExpectedVersion: &v})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = e.as("exec").GET("/submissions/export.xlsx?status=approved")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Headers.Get("Content-Type"))
	assert.Contains(t, resp.Headers.Get("Content-Disposition"), "submissions_")

	resp, err = admin.GET("/dashboard/stats")
	require.NoError(t, err)
	stats := decode[application.DashboardStats](t, resp, http.StatusOK)
	assert.Equal(t, int64(1), stats.CompletedTasks)
}

func TestTemplateInUseCannotBeDeleted(t *testing.T) {
	e := setup(t)
	_, cl, _ := e.createDelivery(t)

	resp, err := e.as("admin").DELETE("/checklist-templates/" + cl.ChecklistTemplateID.String())
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotFoundAndBadIDs(t *testing.T) {
	e := setup(t)

	resp, err := e.as("admin").GET("/tasks/not-a-uuid")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = e.as("admin").GET("/tasks/0190f5a8-2c1e-7c3a-9b1d-3f1a2b3c4d5e")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
