package types

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RolePublic, RoleTeacher, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("%q should be valid", r)
		}
	}
	for _, r := range []Role{"", "superuser", "Teacher"} {
		if r.Valid() {
			t.Fatalf("%q should be invalid", r)
		}
	}
}

func TestRoleCanAccess(t *testing.T) {
	cases := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RolePublic, RolePublic, true},
		{RolePublic, RoleTeacher, false},
		{RolePublic, RoleAdmin, false},
		{RoleTeacher, RolePublic, true},
		{RoleTeacher, RoleTeacher, true},
		{RoleTeacher, RoleAdmin, false},
		{RoleAdmin, RolePublic, true},
		{RoleAdmin, RoleTeacher, true},
		{RoleAdmin, RoleAdmin, true},
	}
	for _, tc := range cases {
		if got := tc.role.CanAccess(tc.required); got != tc.want {
			t.Fatalf("%q.CanAccess(%q) = %v, want %v", tc.role, tc.required, got, tc.want)
		}
	}
}

func TestDurationBucketMatches(t *testing.T) {
	cases := []struct {
		bucket  DurationBucket
		minutes int
		want    bool
	}{
		{DurationShort, 5, true},
		{DurationShort, 15, true},
		{DurationShort, 16, false},
		{DurationLong, 15, false},
		{DurationLong, 16, true},
		{DurationAll, 1, true},
		{DurationAll, 90, true},
		{"", 90, true},
	}
	for _, tc := range cases {
		if got := tc.bucket.Matches(tc.minutes); got != tc.want {
			t.Fatalf("%q.Matches(%d) = %v, want %v", tc.bucket, tc.minutes, got, tc.want)
		}
	}
}
