package enums

const (
	UPDATE_ACTION_CREATED    = "created"
	UPDATE_ACTION_UPDATED    = "updated"
	UPDATE_ACTION_DELETED    = "deleted"
	UPDATE_ACTION_CHECKED_IN = "checked_in"
	UPDATE_ACTION_SHARED     = "shared"
	UPDATE_ACTION_ASSIGNED   = "assigned"
	UPDATE_ACTION_UNASSIGNED = "unassigned"
)
