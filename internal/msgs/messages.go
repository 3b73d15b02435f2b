package msgs

const (
	MsgOperationSuccessful     = "Operation successful"
	MsgOperationFailed         = "Operation failed"
	MsgUserCreatedSuccessfully = "User created successfully"
	MsgYouMustLoginFirst       = "You must login first"
	MsgNotFound                = "Requested resource was not found"
	MsgUpdateQueued            = "Update queued for delivery"
	MsgAlreadyCheckedIn        = "%s is already checked in."
	MsgCheckedIn               = "%s checked in successfully!"
)
