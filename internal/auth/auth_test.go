package auth

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestAuthenticate(t *testing.T) {
	roster := DefaultRoster()

	tests := []struct {
		name     string
		username string
		password string
		wantID   string
		wantOK   bool
	}{
		{"teacher", "Vladislav", "Vladislav15", "teacher-vlad", true},
		{"student", "Oksana", "Oksana25", "student-oksana", true},
		{"wrong password", "Oksana", "wrong", "", false},
		{"wrong case username", "oksana", "Oksana25", "", false},
		{"wrong case password", "Oksana", "oksana25", "", false},
		{"unknown user", "Nobody", "Oksana25", "", false},
		{"empty credentials", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := roster.Authenticate(tt.username, tt.password)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if u.ID != tt.wantID {
				t.Errorf("id = %q, want %q", u.ID, tt.wantID)
			}
		})
	}
}

func TestUserByID(t *testing.T) {
	roster := DefaultRoster()

	u, ok := roster.UserByID("student-alex")
	if !ok || u.Role != RoleStudent {
		t.Errorf("UserByID(student-alex) = %+v (ok=%v)", u, ok)
	}
	if _, ok := roster.UserByID("nobody"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}

func TestPasswordNeverSerialized(t *testing.T) {
	u, _ := DefaultRoster().UserByID("teacher-vlad")
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), u.Password) {
		t.Errorf("password leaked into JSON: %s", data)
	}
}

func TestLoadRosterMissingFileFallsBack(t *testing.T) {
	fs := afero.NewMemMapFs()

	roster, err := LoadRoster(fs, "/etc/lingualearn/roster.yaml")
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster.Users()) != 3 {
		t.Errorf("expected built-in roster, got %d users", len(roster.Users()))
	}
}

func TestLoadRosterFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `users:
  - id: teacher-anna
    username: Anna
    password: secret
    name: Anna Petrova
    role: teacher
  - id: student-ivan
    username: Ivan
    password: ivan123
    name: Ivan Petrov
    role: student
`
	if err := afero.WriteFile(fs, "/cfg/roster.yaml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	roster, err := LoadRoster(fs, "/cfg/roster.yaml")
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	if len(roster.Users()) != 2 {
		t.Fatalf("expected 2 users, got %d", len(roster.Users()))
	}
	u, ok := roster.Authenticate("Anna", "secret")
	if !ok || u.Role != RoleTeacher {
		t.Errorf("Authenticate(Anna) = %+v (ok=%v)", u, ok)
	}
}

func TestLoadRosterRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty user list", "users: []\n"},
		{"unknown role", "users:\n  - id: x\n    username: X\n    password: p\n    name: X\n    role: admin\n"},
		{"not yaml", "{{{{\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "/cfg/roster.yaml", []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadRoster(fs, "/cfg/roster.yaml"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
