package domain

// Operation identifies one access-controlled action. Every service call goes
// through Authorize with one of these; services never compare roles inline.
type Operation int

const (
	// User operations.
	OpUserRead Operation = iota
	OpUserUpdate
	OpUserDelete
	OpUserList
	OpUserCount

	// Address operations. Owner-scoped ones carry the resource owner's id.
	OpAddressCreate
	OpAddressRead
	OpAddressUpdate
	OpAddressDelete
	OpAddressListOwn
	OpAddressListByUser
	OpAddressListAll
)

// ownerScoped operations allow the resource owner as well as admins. The
// remaining operations are either open to any authenticated principal or
// admin-only.
var ownerScoped = map[Operation]bool{
	OpUserRead:      true,
	OpUserUpdate:    true,
	OpUserDelete:    true,
	OpAddressCreate: true,
	OpAddressRead:   true,
	OpAddressUpdate: true,
	OpAddressDelete: true,
}

var adminOnly = map[Operation]bool{
	OpUserList:          true,
	OpUserCount:         true,
	OpAddressListByUser: true,
	OpAddressListAll:    true,
}

// Authorize decides whether p may perform op against a resource owned by
// ownerID. It returns nil on Allow and ErrForbidden on Deny. For operations
// that are not owner-scoped, ownerID is ignored.
func Authorize(p Principal, op Operation, ownerID string) error {
	switch {
	case ownerScoped[op]:
		if ownerID == p.ID || p.Role == RoleAdmin {
			return nil
		}
		return ErrForbidden
	case adminOnly[op]:
		if p.Role == RoleAdmin {
			return nil
		}
		return ErrForbidden
	case op == OpAddressListOwn:
		return nil
	default:
		return ErrForbidden
	}
}
