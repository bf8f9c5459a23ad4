package store

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stsysd/taskboard/db"
	"github.com/stsysd/taskboard/model"
)

func setupTestStore(t *testing.T) (*SQLiteStore, func()) {
	// テスト用の一時ディレクトリを作成
	tempDir, err := os.MkdirTemp("", "taskboard-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// 本番と同じマイグレーションでストアを初期化
	store, err := NewSQLiteStore(tempDir, db.Migrate)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create test store: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tempDir)
	}

	return store, cleanup
}

func testTime() time.Time {
	return time.Date(2025, 5, 1, 10, 4, 1, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// paginate は items をメモリ上でページに切り出します。ストアのページ取得結果と比較するために使います。
func paginate[T any](items []T, req model.PageRequest) *model.Page[T] {
	offset, ok := req.Window(len(items))
	if !ok {
		return model.NewPage[T](nil, len(items), req)
	}
	end := min(offset+req.Limit(), len(items))
	return model.NewPage(append([]T(nil), items[offset:end]...), len(items), req)
}

// fixture はプロジェクト、ユーザー、ステータス、タスク、割り当てを1件ずつ作成します。
type fixture struct {
	project    *model.Project
	user       *model.User
	status     *model.TaskStatus
	task       *model.Task
	assignment *model.TaskAssignment
}

func createFixture(t *testing.T, s *SQLiteStore) fixture {
	t.Helper()
	ctx := context.Background()

	project, err := model.NewProject("Website", "Company site", testTime())
	if err != nil {
		t.Fatalf("Failed to create project model: %v", err)
	}
	if err := s.CreateProject(ctx, project); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	user, err := model.NewUser("Ann", "Lee", "ann@example.com", testTime())
	if err != nil {
		t.Fatalf("Failed to create user model: %v", err)
	}
	if err := s.CreateUser(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	status, err := model.NewTaskStatus("Open")
	if err != nil {
		t.Fatalf("Failed to create status model: %v", err)
	}
	if err := s.CreateTaskStatus(ctx, status); err != nil {
		t.Fatalf("Failed to create status: %v", err)
	}

	task, err := model.NewTask("Design", "", project.ID, &status.ID, &user.ID, testTime())
	if err != nil {
		t.Fatalf("Failed to create task model: %v", err)
	}
	if err := s.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	assignment, err := model.NewTaskAssignment(user.ID, task.ID, testTime())
	if err != nil {
		t.Fatalf("Failed to create assignment model: %v", err)
	}
	if err := s.CreateAssignment(ctx, assignment); err != nil {
		t.Fatalf("Failed to create assignment: %v", err)
	}

	return fixture{project: project, user: user, status: status, task: task, assignment: assignment}
}

func TestCreateAndGetProject(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	project, err := model.NewProject("Website", "Company site", testTime())
	if err != nil {
		t.Fatalf("Failed to create project model: %v", err)
	}
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	if project.ID == 0 {
		t.Fatal("Expected CreateProject to assign an id")
	}

	got, err := store.GetProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get project: %v", err)
	}
	if diff := cmp.Diff(project, got); diff != "" {
		t.Errorf("Project mismatch (-want +got):\n%s", diff)
	}

	exists, err := store.ProjectExists(ctx, project.ID)
	if err != nil || !exists {
		t.Errorf("Expected project to exist, got %v (%v)", exists, err)
	}
}

func TestGetNonExistentProject(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetProject(context.Background(), 42)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	exists, err := store.ProjectExists(context.Background(), 42)
	if err != nil || exists {
		t.Errorf("Expected project not to exist, got %v (%v)", exists, err)
	}
}

func TestUpdateProject(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	project, _ := model.NewProject("Website", "", testTime())
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if err := project.Rename("Intranet", "internal"); err != nil {
		t.Fatalf("Failed to rename project: %v", err)
	}
	if err := store.UpdateProject(ctx, project); err != nil {
		t.Fatalf("Failed to update project: %v", err)
	}

	got, err := store.GetProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("Failed to get project: %v", err)
	}
	if got.Name != "Intranet" || got.Description != "internal" {
		t.Errorf("Expected updated fields, got %q/%q", got.Name, got.Description)
	}
	if !got.CreatedAt.Equal(testTime()) {
		t.Errorf("Expected CreatedAt to be kept, got %v", got.CreatedAt)
	}
}

func TestUpdateNonExistentProject(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	project, _ := model.NewProject("Website", "", testTime())
	project.ID = 99
	err := store.UpdateProject(context.Background(), project)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListProjects(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	projects, err := store.ListProjects(ctx)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("Expected no projects, got %d", len(projects))
	}

	for _, name := range []string{"A", "B", "C"} {
		p, _ := model.NewProject(name, "", testTime())
		if err := store.CreateProject(ctx, p); err != nil {
			t.Fatalf("Failed to create project: %v", err)
		}
	}
	projects, err = store.ListProjects(ctx)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	var names []string
	for _, p := range projects {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, names); diff != "" {
		t.Errorf("Project order mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateTaskWithMissingProject(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	task, err := model.NewTask("Design", "", 7, nil, nil, testTime())
	if err != nil {
		t.Fatalf("Failed to create task model: %v", err)
	}
	err = store.CreateTask(ctx, task)
	if !model.IsValidation(err) {
		t.Fatalf("Expected ValidationError for missing project, got %v", err)
	}

	page, err := store.ListTaskViews(ctx, TaskFilter{}, model.PageRequest{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if page.TotalRecords != 0 {
		t.Errorf("Expected no tasks to be stored, got %d", page.TotalRecords)
	}
}

func TestUpdateTaskWithMissingStatus(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	f.task.StatusID = ptr(int64(404))
	if err := store.UpdateTask(ctx, f.task); !model.IsValidation(err) {
		t.Fatalf("Expected ValidationError for missing status, got %v", err)
	}

	got, err := store.GetTask(ctx, f.task.ID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if got.StatusID == nil || *got.StatusID != f.status.ID {
		t.Errorf("Expected status to stay %d, got %v", f.status.ID, got.StatusID)
	}
}

func TestGetTaskView(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	got, err := store.GetTaskView(ctx, f.task.ID)
	if err != nil {
		t.Fatalf("Failed to get task view: %v", err)
	}
	want := &model.TaskView{
		ID:                    f.task.ID,
		Name:                  "Design",
		ProjectID:             f.project.ID,
		ProjectName:           "Website",
		StatusID:              &f.status.ID,
		StatusName:            "Open",
		CreatedAt:             testTime(),
		CreatedByUserFullName: "Ann Lee",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TaskView mismatch (-want +got):\n%s", diff)
	}
}

func TestTaskViewWithoutOptionalRelations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	project, _ := model.NewProject("Website", "", testTime())
	if err := store.CreateProject(ctx, project); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	task, _ := model.NewTask("Build", "", project.ID, nil, nil, testTime())
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	got, err := store.GetTaskView(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to get task view: %v", err)
	}
	if got.StatusID != nil || got.StatusName != "" || got.CreatedByUserFullName != "" {
		t.Errorf("Expected empty optional relations, got %+v", got)
	}
}

func TestListTaskViewsPagination(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	website, _ := model.NewProject("Website", "", testTime())
	other, _ := model.NewProject("Other", "", testTime())
	for _, p := range []*model.Project{website, other} {
		if err := store.CreateProject(ctx, p); err != nil {
			t.Fatalf("Failed to create project: %v", err)
		}
	}

	var all []model.TaskView
	for i := range 7 {
		task, _ := model.NewTask("Task", "", website.ID, nil, nil, testTime().Add(time.Duration(i)*time.Minute))
		if err := store.CreateTask(ctx, task); err != nil {
			t.Fatalf("Failed to create task: %v", err)
		}
		view, err := store.GetTaskView(ctx, task.ID)
		if err != nil {
			t.Fatalf("Failed to get task view: %v", err)
		}
		all = append(all, *view)
	}
	noise, _ := model.NewTask("Noise", "", other.ID, nil, nil, testTime())
	if err := store.CreateTask(ctx, noise); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	for _, req := range []model.PageRequest{
		{Number: 1, Size: 3},
		{Number: 3, Size: 3},
		{Number: 4, Size: 3},
		{Number: 1, Size: 10},
		{Number: 1, Size: math.MaxInt},
		{Number: math.MaxInt/10 + 2, Size: 10},
		{Number: math.MaxInt, Size: 3},
	} {
		got, err := store.ListTaskViews(ctx, TaskFilter{ProjectID: &website.ID}, req)
		if err != nil {
			t.Fatalf("Failed to list tasks: %v", err)
		}
		want := paginate(all, req)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%+v: page mismatch (-want +got):\n%s", req, diff)
		}
	}
}

func TestListUsersSearch(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for _, u := range [][3]string{
		{"Ann", "Lee", "ann@example.com"},
		{"Bob", "Annist", "bob@example.com"},
		{"Carol", "King", "carol@ANN.org"},
		{"Dave", "Stone", ""},
		{"Émile", "Zola", "zola@example.fr"},
	} {
		user, err := model.NewUser(u[0], u[1], u[2], testTime())
		if err != nil {
			t.Fatalf("Failed to create user model: %v", err)
		}
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "Empty search", search: "", want: []string{"Ann", "Bob", "Carol", "Dave", "Émile"}},
		{name: "Case insensitive", search: "ANN", want: []string{"Ann", "Bob", "Carol"}},
		{name: "Email only", search: "bob@", want: []string{"Bob"}},
		{name: "Wildcards are literal", search: "%", want: nil},
		{name: "No match", search: "zed", want: nil},
		{name: "Non-ASCII name", search: "Émile", want: []string{"Émile"}},
		{name: "Non-ASCII substring", search: "mil", want: []string{"Émile"}},
		{name: "ASCII case folding next to non-ASCII", search: "ZOLA", want: []string{"Émile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := store.ListUsers(ctx, tt.search, model.PageRequest{Number: 1, Size: 10})
			if err != nil {
				t.Fatalf("Failed to list users: %v", err)
			}
			var names []string
			for _, u := range page.Data {
				names = append(names, u.FirstName)
			}
			if diff := cmp.Diff(tt.want, names); diff != "" {
				t.Errorf("Search %q mismatch (-want +got):\n%s", tt.search, diff)
			}
			if page.TotalRecords != len(tt.want) {
				t.Errorf("Expected total %d, got %d", len(tt.want), page.TotalRecords)
			}
		})
	}
}

// TestListHugePageNumber はオフセットが int の範囲を超えるページ番号でも空のページを返すことを確認します。
func TestListHugePageNumber(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	req := model.PageRequest{Number: math.MaxInt/10 + 2, Size: 10}

	tasks, err := store.ListTaskViews(ctx, TaskFilter{}, req)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if tasks.TotalRecords != 1 || len(tasks.Data) != 0 {
		t.Errorf("Expected empty task page with total 1, got total=%d len=%d", tasks.TotalRecords, len(tasks.Data))
	}

	users, err := store.ListUsers(ctx, "", req)
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if users.TotalRecords != 1 || len(users.Data) != 0 {
		t.Errorf("Expected empty user page with total 1, got total=%d len=%d", users.TotalRecords, len(users.Data))
	}

	assignments, err := store.ListAssignmentViews(ctx, AssignmentFilter{TaskID: &f.task.ID}, req)
	if err != nil {
		t.Fatalf("Failed to list assignments: %v", err)
	}
	if assignments.TotalRecords != 1 || len(assignments.Data) != 0 {
		t.Errorf("Expected empty assignment page with total 1, got total=%d len=%d", assignments.TotalRecords, len(assignments.Data))
	}
}

func TestListUsersOutOfRangePage(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	user, _ := model.NewUser("Ann", "Lee", "", testTime())
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	page, err := store.ListUsers(ctx, "", model.PageRequest{Number: 5, Size: 10})
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if page.TotalRecords != 1 || len(page.Data) != 0 || page.Data == nil {
		t.Errorf("Expected empty page with total 1, got %+v", page)
	}
}

func TestCommentView(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	comment, err := model.NewComment("Looks good", f.assignment.ID, testTime())
	if err != nil {
		t.Fatalf("Failed to create comment model: %v", err)
	}
	if err := store.CreateComment(ctx, comment); err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	got, err := store.GetCommentView(ctx, comment.ID)
	if err != nil {
		t.Fatalf("Failed to get comment view: %v", err)
	}
	want := &model.CommentView{
		ID:               comment.ID,
		Message:          "Looks good",
		TaskAssignmentID: f.assignment.ID,
		UserFullName:     "Ann Lee",
		TaskName:         "Design",
		DateCreated:      testTime(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CommentView mismatch (-want +got):\n%s", diff)
	}

	byTask, err := store.ListCommentViews(ctx, CommentFilter{TaskID: &f.task.ID}, model.PageRequest{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("Failed to list comments: %v", err)
	}
	if byTask.TotalRecords != 1 || byTask.Data[0].ID != comment.ID {
		t.Errorf("Expected the comment to be listed by task, got %+v", byTask)
	}

	none, err := store.ListCommentViews(ctx, CommentFilter{TaskID: ptr(int64(999))}, model.PageRequest{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("Failed to list comments: %v", err)
	}
	if none.TotalRecords != 0 {
		t.Errorf("Expected no comments for unknown task, got %d", none.TotalRecords)
	}
}

func TestCreateCommentWithMissingAssignment(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	comment, _ := model.NewComment("hello", 5, testTime())
	err := store.CreateComment(context.Background(), comment)
	if !model.IsValidation(err) {
		t.Errorf("Expected ValidationError, got %v", err)
	}
}

func TestAssignmentViewsFilter(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	bob, _ := model.NewUser("Bob", "Stone", "", testTime())
	if err := store.CreateUser(ctx, bob); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	second, _ := model.NewTaskAssignment(bob.ID, f.task.ID, testTime())
	if err := store.CreateAssignment(ctx, second); err != nil {
		t.Fatalf("Failed to create assignment: %v", err)
	}
	duplicate, _ := model.NewTaskAssignment(f.user.ID, f.task.ID, testTime())
	if err := store.CreateAssignment(ctx, duplicate); err != nil {
		t.Fatalf("Duplicate assignments must be allowed: %v", err)
	}

	req := model.PageRequest{Number: 1, Size: 10}
	byTask, err := store.ListAssignmentViews(ctx, AssignmentFilter{TaskID: &f.task.ID}, req)
	if err != nil {
		t.Fatalf("Failed to list assignments: %v", err)
	}
	if byTask.TotalRecords != 3 {
		t.Errorf("Expected 3 assignments for task, got %d", byTask.TotalRecords)
	}

	byUser, err := store.ListAssignmentViews(ctx, AssignmentFilter{UserID: &bob.ID}, req)
	if err != nil {
		t.Fatalf("Failed to list assignments: %v", err)
	}
	want := []model.AssignmentView{{
		ID:           second.ID,
		Date:         testTime(),
		UserID:       bob.ID,
		UserFullName: "Bob Stone",
		TaskID:       f.task.ID,
		TaskName:     "Design",
	}}
	if diff := cmp.Diff(want, byUser.Data); diff != "" {
		t.Errorf("Assignments by user mismatch (-want +got):\n%s", diff)
	}

	found, err := store.FindAssignments(ctx, f.task.ID, f.user.ID)
	if err != nil {
		t.Fatalf("Failed to find assignments: %v", err)
	}
	if len(found) != 2 || found[0].ID != f.assignment.ID || found[1].ID != duplicate.ID {
		t.Errorf("Expected both assignments of the pair in id order, got %+v", found)
	}
}

func TestStatusHistoryViews(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	history := &model.TaskStatusHistory{StatusID: f.status.ID, TaskAssignmentID: f.assignment.ID, Date: testTime()}
	if err := store.CreateStatusHistory(ctx, history); err != nil {
		t.Fatalf("Failed to create history: %v", err)
	}

	page, err := store.ListStatusHistoryViews(ctx, HistoryFilter{TaskID: &f.task.ID}, model.PageRequest{Number: 1, Size: 10})
	if err != nil {
		t.Fatalf("Failed to list histories: %v", err)
	}
	want := []model.StatusHistoryView{{
		ID:                  history.ID,
		TaskName:            "Design",
		ChangedToStatusName: "Open",
		ByUserFullName:      "Ann Lee",
		Date:                testTime(),
	}}
	if diff := cmp.Diff(want, page.Data); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}

	rows, err := store.ListStatusHistories(ctx, f.assignment.ID)
	if err != nil {
		t.Fatalf("Failed to list histories: %v", err)
	}
	if len(rows) != 1 || rows[0].StatusID != f.status.ID {
		t.Errorf("Unexpected history rows: %+v", rows)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	comment, _ := model.NewComment("note", f.assignment.ID, testTime())
	if err := store.CreateComment(ctx, comment); err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}

	n, err := store.DeleteProject(ctx, f.project.ID)
	if err != nil || n != 1 {
		t.Fatalf("Expected one deleted project, got %d (%v)", n, err)
	}

	if _, err := store.GetTask(ctx, f.task.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected task to be deleted, got %v", err)
	}
	if _, err := store.GetAssignment(ctx, f.assignment.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected assignment to be deleted, got %v", err)
	}
	if _, err := store.GetComment(ctx, comment.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected comment to be deleted, got %v", err)
	}
	if _, err := store.GetUser(ctx, f.user.ID); err != nil {
		t.Errorf("Expected user to survive, got %v", err)
	}

	n, err = store.DeleteProject(ctx, f.project.ID)
	if err != nil || n != 0 {
		t.Errorf("Expected nothing to delete, got %d (%v)", n, err)
	}
}

func TestDeleteOptionalParentsSetNull(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()
	f := createFixture(t, store)

	if n, err := store.DeleteTaskStatus(ctx, f.status.ID); err != nil || n != 1 {
		t.Fatalf("Failed to delete status: %d (%v)", n, err)
	}
	if n, err := store.DeleteUser(ctx, f.user.ID); err != nil || n != 1 {
		t.Fatalf("Failed to delete user: %d (%v)", n, err)
	}

	task, err := store.GetTask(ctx, f.task.ID)
	if err != nil {
		t.Fatalf("Expected task to survive, got %v", err)
	}
	if task.StatusID != nil || task.CreatedByUserID != nil {
		t.Errorf("Expected optional references to be cleared, got %+v", task)
	}
	if _, err := store.GetAssignment(ctx, f.assignment.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected the user's assignment to be deleted, got %v", err)
	}
}

func TestWithinTxRollback(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	var created int64
	errBoom := errors.New("boom")
	err := store.WithinTx(ctx, func(tx Store) error {
		p, _ := model.NewProject("Website", "", testTime())
		if err := tx.CreateProject(ctx, p); err != nil {
			return err
		}
		created = p.ID
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Expected the callback error, got %v", err)
	}

	exists, err := store.ProjectExists(ctx, created)
	if err != nil {
		t.Fatalf("Failed to check project: %v", err)
	}
	if exists {
		t.Error("Expected the project insert to be rolled back")
	}
}

func TestWithinTxCommit(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	var created int64
	err := store.WithinTx(ctx, func(tx Store) error {
		p, _ := model.NewProject("Website", "", testTime())
		if err := tx.CreateProject(ctx, p); err != nil {
			return err
		}
		created = p.ID
		// 入れ子の呼び出しは同じトランザクションを使う
		return tx.WithinTx(ctx, func(inner Store) error {
			_, err := inner.GetProject(ctx, created)
			return err
		})
	})
	if err != nil {
		t.Fatalf("Failed to run transaction: %v", err)
	}
	if _, err := store.GetProject(ctx, created); err != nil {
		t.Errorf("Expected committed project, got %v", err)
	}
}
