package single

import "testing"

func TestIdentityName(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want string
	}{
		{
			name: "without group",
			id:   Identity{App: "app", UID: 1000},
			want: "app-ipc-1000",
		},
		{
			name: "with group",
			id:   Identity{App: "app", UID: 1000, Group: "work"},
			want: "app-ipc-1000-work",
		},
		{
			name: "root uid",
			id:   Identity{App: "soloist", UID: 0},
			want: "soloist-ipc-0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCurrentIdentity(t *testing.T) {
	id := CurrentIdentity("app", "g")
	if id.App != "app" || id.Group != "g" {
		t.Errorf("CurrentIdentity() = %+v", id)
	}
	if id.UID < 0 {
		t.Errorf("UID = %d, want a real uid", id.UID)
	}
}

func TestRoleString(t *testing.T) {
	if Primary.String() != "primary" {
		t.Errorf("Primary.String() = %q", Primary.String())
	}
	if Secondary.String() != "secondary" {
		t.Errorf("Secondary.String() = %q", Secondary.String())
	}
}
