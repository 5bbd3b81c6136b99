package setting

import "github.com/bntng-project/esensi-backend/internal/pkg/validator"

// UpdateSettingsRequest is the admin settings form. Only supplied fields are
// written.
type UpdateSettingsRequest struct {
	OfficeLatitude  *float64 `json:"office_latitude,omitempty"`
	OfficeLongitude *float64 `json:"office_longitude,omitempty"`
	OfficeRadius    *int     `json:"office_radius_meters,omitempty"`
	StandardHours   *int     `json:"standard_work_hours,omitempty"`
	WhatsAppAPIKey  *string  `json:"whatsapp_api_key,omitempty"`
	WhatsAppSender  *string  `json:"whatsapp_sender,omitempty"`
	HRNumber        *string  `json:"hrd_whatsapp_number,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OfficeLatitude != nil && (*r.OfficeLatitude < -90 || *r.OfficeLatitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}
	if r.OfficeLongitude != nil && (*r.OfficeLongitude < -180 || *r.OfficeLongitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}
	if r.OfficeRadius != nil && *r.OfficeRadius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "office_radius_meters",
			Message: "office_radius_meters must be positive",
		})
	}
	if r.StandardHours != nil && (*r.StandardHours < 1 || *r.StandardHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_work_hours",
			Message: "standard_work_hours must be between 1 and 24",
		})
	}
	if r.HRNumber != nil && *r.HRNumber != "" && !validator.IsValidPhoneNumber(*r.HRNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "hrd_whatsapp_number",
			Message: "hrd_whatsapp_number must be a valid Indonesian phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SettingsResponse is the admin settings view.
type SettingsResponse struct {
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	OfficeRadius    float64 `json:"office_radius_meters"`
	StandardHours   int     `json:"standard_work_hours"`
	WhatsAppSender  string  `json:"whatsapp_sender"`
	HRNumber        string  `json:"hrd_whatsapp_number"`
}
