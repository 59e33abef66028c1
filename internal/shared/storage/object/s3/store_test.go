package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "user/avatar.png", want: "user/avatar.png"},
		{name: "simple prefix", prefix: "images", key: "user/avatar.png", want: "images/user/avatar.png"},
		{name: "prefix trailing slash", prefix: "images/", key: "user/avatar.png", want: "images/user/avatar.png"},
		{name: "prefix and key slashes", prefix: "/images/", key: "/user/avatar.png", want: "images/user/avatar.png"},
		{name: "nested prefix", prefix: "images/resumes", key: "user/avatar.png", want: "images/resumes/user/avatar.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
