package dto

type CreateVehicleDTO struct {
	Number    string  `json:"number" validate:"required,vehicle_number"`
	Brand     *string `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model     *string `json:"model,omitempty" validate:"omitempty,max=100"`
	TruckType *string `json:"truck_type,omitempty" validate:"omitempty,truck_type"`
}

type UpdateVehicleDTO struct {
	Number    *string `json:"number,omitempty" validate:"omitempty,vehicle_number"`
	Brand     *string `json:"brand,omitempty" validate:"omitempty,max=100"`
	Model     *string `json:"model,omitempty" validate:"omitempty,max=100"`
	TruckType *string `json:"truck_type,omitempty" validate:"omitempty,truck_type"`
}
