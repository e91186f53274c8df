package application

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/submission"
	"github.com/linskybing/logistics-go/internal/domain/task"
	"github.com/linskybing/logistics-go/internal/domain/user"
	"github.com/linskybing/logistics-go/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTaskInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		CustomerName:        "Acme Feeds",
		DeliveryAddress:     "Dock Road",
		ProductName:         "Layer Pellets",
		DocketNumber:        "D-100",
		VehicleType:         task.VehicleTruck,
		PlannedDeliveryDate: "2025-07-18",
	}
}

// --------------------- CreateTask ---------------------
func TestCreateTask_AssignsDriver(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, storage.NewMemoryStore())
	driver := user.User{ID: uuid.New(), Email: "dan@test.io", FirstName: "Dan", LastName: "Driver", Role: user.RoleDriver}

	m.User.EXPECT().GetUserByID(gomock.Any(), driver.ID).Return(driver, nil)
	m.Task.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(nil)

	in := validTaskInput()
	in.AssignedDriverID = &driver.ID
	got, err := svc.CreateTask(testCtx, actor(user.RoleAdmin), in)
	require.NoError(t, err)
	assert.Equal(t, task.StatusNew, got.Status)
	assert.Equal(t, "Dan Driver", got.AssignedDriverName)
	require.NotNil(t, got.PlannedDeliveryDate)
	assert.Equal(t, "2025-07-18", got.PlannedDeliveryDate.Format("2006-01-02"))
	assert.Nil(t, got.PlannedDecantDate)
}

func TestCreateTask_AssigneeMustBeDriver(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	wh := user.User{ID: uuid.New(), Role: user.RoleWarehouse}

	m.User.EXPECT().GetUserByID(gomock.Any(), wh.ID).Return(wh, nil)

	in := validTaskInput()
	in.AssignedDriverID = &wh.ID
	_, err := svc.CreateTask(testCtx, actor(user.RoleAdmin), in)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "assigned_driver_id")
}

func TestCreateTask_InvalidDate(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)

	in := validTaskInput()
	in.PlannedDeliveryDate = "18/07/2025"
	_, err := svc.CreateTask(testCtx, actor(user.RoleAdmin), in)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be a date (YYYY-MM-DD)", ve.Fields["planned_delivery_date"])
}

func TestCreateTask_AdminOnly(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)

	_, err := svc.CreateTask(testCtx, actor(user.RoleExecutive), validTaskInput())
	assert.ErrorIs(t, err, ErrPermission)
}

// --------------------- ListTasks / GetTask ---------------------
func TestListTasks_DriverSeesAllTasks(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	driver := actor(user.RoleDriver)
	other := uuid.New()

	m.Task.EXPECT().ListTasks(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f task.ListFilter) ([]task.Task, error) {
			assert.Nil(t, f.AssignedDriverID)
			return []task.Task{{ID: uuid.New()}, {ID: uuid.New(), AssignedDriverID: &other}}, nil
		})

	tasks, err := svc.ListTasks(testCtx, driver, task.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestListTasks_MineFiltersByActor(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	driver := actor(user.RoleDriver)

	m.Task.EXPECT().ListTasks(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f task.ListFilter) ([]task.Task, error) {
			require.NotNil(t, f.AssignedDriverID)
			assert.Equal(t, driver.ID, *f.AssignedDriverID)
			return nil, nil
		})

	_, err := svc.ListTasks(testCtx, driver, task.ListFilter{Mine: true})
	require.NoError(t, err)
}

func TestGetTask_ProgressAndStatuses(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	tk := task.Task{ID: uuid.New(), Status: task.StatusInProgress}
	a := task.Attachment{ID: uuid.New(), TaskID: tk.ID, IsRequired: true}
	b := task.Attachment{ID: uuid.New(), TaskID: tk.ID, IsRequired: true}
	c := task.Attachment{ID: uuid.New(), TaskID: tk.ID, IsRequired: false}

	m.Task.EXPECT().GetTaskByID(gomock.Any(), tk.ID).Return(tk, nil)
	m.Attachment.EXPECT().ListAttachmentsByTask(gomock.Any(), tk.ID).Return([]task.Attachment{a, b, c}, nil)
	m.Submission.EXPECT().LatestByAttachments(gomock.Any(), []uuid.UUID{a.ID, b.ID, c.ID}).Return(map[uuid.UUID]submission.Submission{
		a.ID: {Status: submission.StatusApproved},
		c.ID: {Status: submission.StatusApproved},
	}, nil)

	detail, err := svc.GetTask(testCtx, actor(user.RoleExecutive), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskProgress{Required: 2, RequiredApproved: 1}, detail.Progress)
	assert.Equal(t, submission.StatusPending, detail.Attachments[1].Status)
	assert.True(t, detail.Attachments[1].CanSubmit)
	assert.False(t, detail.Attachments[0].CanSubmit)
}

func TestGetTask_DriverSeesUnassignedTask(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	tk := task.Task{ID: uuid.New(), Status: task.StatusNew}

	m.Task.EXPECT().GetTaskByID(gomock.Any(), tk.ID).Return(tk, nil)
	m.Attachment.EXPECT().ListAttachmentsByTask(gomock.Any(), tk.ID).Return(nil, nil)

	detail, err := svc.GetTask(testCtx, actor(user.RoleDriver), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, tk.ID, detail.ID)
}

// --------------------- UpdateTask / CancelTask ---------------------
func TestUpdateTask_ClosedTaskIsReadOnly(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	tk := task.Task{ID: uuid.New(), Status: task.StatusCompleted}

	m.Task.EXPECT().GetTaskByID(gomock.Any(), tk.ID).Return(tk, nil)

	_, err := svc.UpdateTask(testCtx, actor(user.RoleAdmin), tk.ID, task.UpdateTaskInput{CustomerName: ptr("New")})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateTask_PartialUpdate(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	tk := task.Task{ID: uuid.New(), Status: task.StatusNew, CustomerName: "Acme", DeliveryAddress: "Dock", ProductName: "Pellets", NumberOfBags: 10}

	m.Task.EXPECT().GetTaskByID(gomock.Any(), tk.ID).Return(tk, nil)
	m.Task.EXPECT().SaveTask(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.UpdateTask(testCtx, actor(user.RoleAdmin), tk.ID, task.UpdateTaskInput{NumberOfBags: ptr(12), Supplier: ptr(" Grain Co ")})
	require.NoError(t, err)
	assert.Equal(t, 12, got.NumberOfBags)
	assert.Equal(t, "Grain Co", got.Supplier)
	assert.Equal(t, "Acme", got.CustomerName)
}

func TestCancelTask(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	id := uuid.New()

	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), id, openStatuses, task.StatusCancelled).Return(true, nil)

	assert.NoError(t, svc.CancelTask(testCtx, actor(user.RoleAdmin), id))
}

func TestCancelTask_AlreadyCompleted(t *testing.T) {
	m := setupRepoMocks(t)
	svc := NewTaskService(m.Repos, nil)
	id := uuid.New()

	m.Task.EXPECT().UpdateStatusIf(gomock.Any(), id, openStatuses, task.StatusCancelled).Return(false, nil)
	m.Task.EXPECT().GetTaskByID(gomock.Any(), id).Return(task.Task{ID: id, Status: task.StatusCompleted}, nil)

	err := svc.CancelTask(testCtx, actor(user.RoleAdmin), id)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "completed")
}

// --------------------- DeleteTask ---------------------
func TestDeleteTask_CascadesAndRemovesFiles(t *testing.T) {
	m := setupRepoMocks(t)
	store := storage.NewMemoryStore()
	svc := NewTaskService(m.Repos, store)
	tk := task.Task{ID: uuid.New()}
	att := task.Attachment{ID: uuid.New(), TaskID: tk.ID}
	path := tk.ID.String() + "/" + att.ID.String() + "/1.pdf"
	require.NoError(t, store.Put(testCtx, path, "application/pdf", strings.NewReader("pdf"), 3))

	m.Task.EXPECT().GetTaskByID(gomock.Any(), tk.ID).Return(tk, nil)
	gomock.InOrder(
		m.Attachment.EXPECT().ListAttachmentsByTask(gomock.Any(), tk.ID).Return([]task.Attachment{att}, nil),
		m.Submission.EXPECT().ListFilePathsByAttachments(gomock.Any(), []uuid.UUID{att.ID}).Return([]string{path}, nil),
		m.Submission.EXPECT().DeleteByAttachments(gomock.Any(), []uuid.UUID{att.ID}).Return(nil),
		m.Attachment.EXPECT().DeleteAttachmentsByTask(gomock.Any(), tk.ID).Return(nil),
		m.Task.EXPECT().DeleteTask(gomock.Any(), tk.ID).Return(nil),
	)

	require.NoError(t, svc.DeleteTask(testCtx, actor(user.RoleAdmin), tk.ID))
	assert.Equal(t, 0, store.Len())
}
