package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Team member role values
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Team member status values
const (
	MemberStatusPending  = "pending"
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
)

type TeamMember struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Permissions []string   `json:"permissions"`
	InviteToken string     `json:"-"`
	InvitedBy   string     `json:"invited_by"`
	InvitedAt   time.Time  `json:"invited_at"`
	JoinedAt    *time.Time `json:"joined_at"`
}

// ValidRole reports whether s is one of the accepted role values.
func ValidRole(s string) bool {
	return s == RoleOwner || s == RoleAdmin || s == RoleMember
}

// PermissionsForRole returns the permission set granted to a role. The set is
// captured at invite time and stored with the member; it is not re-derived if
// role defaults change later.
func PermissionsForRole(role string) []string {
	switch role {
	case RoleOwner:
		return []string{"candidates:write", "jobs:write", "applications:write", "interviews:write", "team:manage", "reports:view", "billing:manage"}
	case RoleAdmin:
		return []string{"candidates:write", "jobs:write", "applications:write", "interviews:write", "team:manage", "reports:view"}
	default:
		return []string{"candidates:write", "jobs:write", "applications:write", "interviews:write", "reports:view"}
	}
}

type TeamMemberModel struct {
	DB *sql.DB
}

func NewTeamMemberModel(db *sql.DB) *TeamMemberModel {
	return &TeamMemberModel{DB: db}
}

const teamMemberColumns = `id, user_id, email, role, status, permissions, invite_token, invited_by, invited_at, joined_at`

func scanTeamMember(row interface{ Scan(...interface{}) error }) (*TeamMember, error) {
	tm := &TeamMember{}
	var joinedAt sql.NullTime
	err := row.Scan(&tm.ID, &tm.UserID, &tm.Email, &tm.Role, &tm.Status,
		pq.Array(&tm.Permissions), &tm.InviteToken, &tm.InvitedBy, &tm.InvitedAt, &joinedAt)
	if err != nil {
		return nil, err
	}
	if joinedAt.Valid {
		tm.JoinedAt = &joinedAt.Time
	}
	return tm, nil
}

func (m *TeamMemberModel) Create(userID int, email, role, inviteToken, invitedBy string) (*TeamMember, error) {
	query := `
		INSERT INTO team_members (user_id, email, role, status, permissions, invite_token, invited_by, invited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + teamMemberColumns
	row := m.DB.QueryRow(query, userID, email, role, MemberStatusPending,
		pq.Array(PermissionsForRole(role)), inviteToken, invitedBy, time.Now())
	return scanTeamMember(row)
}

func (m *TeamMemberModel) GetByUserID(userID int) ([]TeamMember, error) {
	members := []TeamMember{}
	query := `
		SELECT ` + teamMemberColumns + `
		FROM team_members
		WHERE user_id = $1
		ORDER BY invited_at ASC
	`
	rows, err := m.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		tm, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *tm)
	}
	return members, rows.Err()
}

func (m *TeamMemberModel) GetByInviteToken(token string) (*TeamMember, error) {
	query := `
		SELECT ` + teamMemberColumns + `
		FROM team_members WHERE invite_token = $1
	`
	return scanTeamMember(m.DB.QueryRow(query, token))
}

// Accept marks a pending invite as joined.
func (m *TeamMemberModel) Accept(token string) (*TeamMember, error) {
	query := `
		UPDATE team_members
		SET status = $1, joined_at = $2
		WHERE invite_token = $3 AND status = $4
		RETURNING ` + teamMemberColumns
	row := m.DB.QueryRow(query, MemberStatusActive, time.Now(), token, MemberStatusPending)
	return scanTeamMember(row)
}

func (m *TeamMemberModel) UpdateRole(userID, id int, role string) error {
	query := `UPDATE team_members SET role = $1 WHERE id = $2 AND user_id = $3`
	_, err := m.DB.Exec(query, role, id, userID)
	return err
}

func (m *TeamMemberModel) UpdateStatus(userID, id int, status string) error {
	query := `UPDATE team_members SET status = $1 WHERE id = $2 AND user_id = $3`
	_, err := m.DB.Exec(query, status, id, userID)
	return err
}

func (m *TeamMemberModel) Delete(userID, id int) error {
	query := `DELETE FROM team_members WHERE id = $1 AND user_id = $2`
	_, err := m.DB.Exec(query, id, userID)
	return err
}
