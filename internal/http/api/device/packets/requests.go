package packets

type RegisterPairingCodeRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}

type AttachRequest struct {
	DeviceID string `json:"device_id" binding:"required"`
}
