package store

import (
	"database/sql"
	"time"

	"github.com/stsysd/taskboard/model"
)

// 読み取り用レコードは LEFT JOIN で関連テーブルの名前を集めます。
// 任意の関連が欠けていれば空文字列に、必須の関連が欠けていれば IntegrityError になります。

var taskViewQuery = pageQuery{
	columns: `t.id, t.name, t.description, t.project_id, p.name AS project_name,
		t.status_id, s.name AS status_name, t.created_at,
		u.id AS created_by_id, u.first_name AS created_by_first_name, u.last_name AS created_by_last_name`,
	from: `tasks t
		LEFT JOIN projects p ON p.id = t.project_id
		LEFT JOIN task_statuses s ON s.id = t.status_id
		LEFT JOIN users u ON u.id = t.created_by_user_id`,
	orderBy: "t.id",
}

type taskRow struct {
	ID                 int64          `db:"id"`
	Name               string         `db:"name"`
	Description        string         `db:"description"`
	ProjectID          int64          `db:"project_id"`
	ProjectName        sql.NullString `db:"project_name"`
	StatusID           sql.NullInt64  `db:"status_id"`
	StatusName         sql.NullString `db:"status_name"`
	CreatedAt          time.Time      `db:"created_at"`
	CreatedByID        sql.NullInt64  `db:"created_by_id"`
	CreatedByFirstName sql.NullString `db:"created_by_first_name"`
	CreatedByLastName  sql.NullString `db:"created_by_last_name"`
}

func (r taskRow) view() (*model.TaskView, error) {
	if !r.ProjectName.Valid {
		return nil, model.NewIntegrityError("task", r.ID, "project")
	}
	v := &model.TaskView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		ProjectName: r.ProjectName.String,
		CreatedAt:   r.CreatedAt,
	}
	if r.StatusName.Valid {
		v.StatusID = int64Ptr(r.StatusID)
		v.StatusName = r.StatusName.String
	}
	if r.CreatedByID.Valid {
		v.CreatedByUserFullName = model.FullName(r.CreatedByFirstName.String, r.CreatedByLastName.String)
	}
	return v, nil
}

var assignmentViewQuery = pageQuery{
	columns: `a.id, a.date, a.user_id, a.task_id,
		u.id AS joined_user_id, u.first_name, u.last_name,
		t.name AS task_name`,
	from: `task_assignments a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN tasks t ON t.id = a.task_id`,
	orderBy: "a.id",
}

type assignmentRow struct {
	ID           int64          `db:"id"`
	Date         time.Time      `db:"date"`
	UserID       int64          `db:"user_id"`
	TaskID       int64          `db:"task_id"`
	JoinedUserID sql.NullInt64  `db:"joined_user_id"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	TaskName     sql.NullString `db:"task_name"`
}

func (r assignmentRow) view() (*model.AssignmentView, error) {
	if !r.JoinedUserID.Valid {
		return nil, model.NewIntegrityError("task assignment", r.ID, "user")
	}
	if !r.TaskName.Valid {
		return nil, model.NewIntegrityError("task assignment", r.ID, "task")
	}
	return &model.AssignmentView{
		ID:           r.ID,
		Date:         r.Date,
		UserID:       r.UserID,
		UserFullName: model.FullName(r.FirstName.String, r.LastName.String),
		TaskID:       r.TaskID,
		TaskName:     r.TaskName.String,
	}, nil
}

var commentViewQuery = pageQuery{
	columns: `c.id, c.message, c.task_assignment_id, c.date_created,
		a.id AS joined_assignment_id, u.id AS joined_user_id, u.first_name, u.last_name,
		t.name AS task_name`,
	from: `comments c
		LEFT JOIN task_assignments a ON a.id = c.task_assignment_id
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN tasks t ON t.id = a.task_id`,
	orderBy: "c.id",
}

type commentRow struct {
	ID                 int64          `db:"id"`
	Message            string         `db:"message"`
	TaskAssignmentID   int64          `db:"task_assignment_id"`
	DateCreated        time.Time      `db:"date_created"`
	JoinedAssignmentID sql.NullInt64  `db:"joined_assignment_id"`
	JoinedUserID       sql.NullInt64  `db:"joined_user_id"`
	FirstName          sql.NullString `db:"first_name"`
	LastName           sql.NullString `db:"last_name"`
	TaskName           sql.NullString `db:"task_name"`
}

func (r commentRow) view() (*model.CommentView, error) {
	if !r.JoinedAssignmentID.Valid {
		return nil, model.NewIntegrityError("comment", r.ID, "task assignment")
	}
	if !r.JoinedUserID.Valid {
		return nil, model.NewIntegrityError("comment", r.ID, "user")
	}
	if !r.TaskName.Valid {
		return nil, model.NewIntegrityError("comment", r.ID, "task")
	}
	return &model.CommentView{
		ID:               r.ID,
		Message:          r.Message,
		TaskAssignmentID: r.TaskAssignmentID,
		UserFullName:     model.FullName(r.FirstName.String, r.LastName.String),
		TaskName:         r.TaskName.String,
		DateCreated:      r.DateCreated,
	}, nil
}

var historyViewQuery = pageQuery{
	columns: `h.id, h.date, s.name AS status_name,
		a.id AS joined_assignment_id, u.id AS joined_user_id, u.first_name, u.last_name,
		t.name AS task_name`,
	from: `task_status_histories h
		LEFT JOIN task_statuses s ON s.id = h.status_id
		LEFT JOIN task_assignments a ON a.id = h.task_assignment_id
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN tasks t ON t.id = a.task_id`,
	orderBy: "h.id",
}

type historyRow struct {
	ID                 int64          `db:"id"`
	Date               time.Time      `db:"date"`
	StatusName         sql.NullString `db:"status_name"`
	JoinedAssignmentID sql.NullInt64  `db:"joined_assignment_id"`
	JoinedUserID       sql.NullInt64  `db:"joined_user_id"`
	FirstName          sql.NullString `db:"first_name"`
	LastName           sql.NullString `db:"last_name"`
	TaskName           sql.NullString `db:"task_name"`
}

func (r historyRow) view() (*model.StatusHistoryView, error) {
	if !r.StatusName.Valid {
		return nil, model.NewIntegrityError("task status history", r.ID, "task status")
	}
	if !r.JoinedAssignmentID.Valid {
		return nil, model.NewIntegrityError("task status history", r.ID, "task assignment")
	}
	if !r.JoinedUserID.Valid {
		return nil, model.NewIntegrityError("task status history", r.ID, "user")
	}
	if !r.TaskName.Valid {
		return nil, model.NewIntegrityError("task status history", r.ID, "task")
	}
	return &model.StatusHistoryView{
		ID:                  r.ID,
		TaskName:            r.TaskName.String,
		ChangedToStatusName: r.StatusName.String,
		ByUserFullName:      model.FullName(r.FirstName.String, r.LastName.String),
		Date:                r.Date,
	}, nil
}

// viewsOf は読み取った行をすべて読み取り用レコードに変換します。
func viewsOf[R any, V any](rows []R, view func(R) (*V, error)) ([]V, error) {
	views := make([]V, 0, len(rows))
	for _, r := range rows {
		v, err := view(r)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}
