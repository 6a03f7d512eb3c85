package domain

import "testing"

func TestAuthorize_OwnerScopedOperations(t *testing.T) {
	user := Principal{ID: "u1", Role: RoleUser}
	admin := Principal{ID: "a1", Role: RoleAdmin}

	ops := []Operation{
		OpUserRead, OpUserUpdate, OpUserDelete,
		OpAddressCreate, OpAddressRead, OpAddressUpdate, OpAddressDelete,
	}

	for _, op := range ops {
		if err := Authorize(user, op, "u1"); err != nil {
			t.Errorf("op %d: owner should be allowed, got %v", op, err)
		}
		if err := Authorize(user, op, "u2"); err != ErrForbidden {
			t.Errorf("op %d: non-owner user should be denied, got %v", op, err)
		}
		if err := Authorize(admin, op, "u2"); err != nil {
			t.Errorf("op %d: admin should be allowed on any owner, got %v", op, err)
		}
	}
}

func TestAuthorize_AdminOnlyOperations(t *testing.T) {
	user := Principal{ID: "u1", Role: RoleUser}
	admin := Principal{ID: "a1", Role: RoleAdmin}

	ops := []Operation{OpUserList, OpUserCount, OpAddressListByUser, OpAddressListAll}

	for _, op := range ops {
		if err := Authorize(user, op, ""); err != ErrForbidden {
			t.Errorf("op %d: user should be denied, got %v", op, err)
		}
		if err := Authorize(admin, op, ""); err != nil {
			t.Errorf("op %d: admin should be allowed, got %v", op, err)
		}
	}
}

func TestAuthorize_ListOwnAlwaysAllowed(t *testing.T) {
	for _, p := range []Principal{
		{ID: "u1", Role: RoleUser},
		{ID: "a1", Role: RoleAdmin},
	} {
		if err := Authorize(p, OpAddressListOwn, p.ID); err != nil {
			t.Errorf("principal %s: list own should always be allowed, got %v", p.ID, err)
		}
	}
}

func TestAuthorize_UpdateMatchesOwnershipRule(t *testing.T) {
	// Allow iff principal owns the resource or is an admin.
	cases := []struct {
		name    string
		p       Principal
		ownerID string
		allowed bool
	}{
		{"owner user", Principal{ID: "u1", Role: RoleUser}, "u1", true},
		{"foreign user", Principal{ID: "u1", Role: RoleUser}, "u2", false},
		{"admin on own", Principal{ID: "a1", Role: RoleAdmin}, "a1", true},
		{"admin on foreign", Principal{ID: "a1", Role: RoleAdmin}, "u2", true},
	}

	for _, tc := range cases {
		err := Authorize(tc.p, OpAddressUpdate, tc.ownerID)
		if tc.allowed && err != nil {
			t.Errorf("%s: expected allow, got %v", tc.name, err)
		}
		if !tc.allowed && err != ErrForbidden {
			t.Errorf("%s: expected ErrForbidden, got %v", tc.name, err)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("SUPERUSER").Valid() {
		t.Fatalf("unknown role must not be valid")
	}
}
