package requests

// NotificationMessage is the payload published to the mailer queue. The mail
// worker renders the subject and HTML body from the template kind; the core
// never formats email markup itself.
type NotificationMessage struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	To              string  `json:"to"`
	PatientName     string  `json:"patient_name,omitempty"`
	DoctorName      string  `json:"doctor_name,omitempty"`
	AppointmentDate string  `json:"appointment_date,omitempty"`
	Reason          string  `json:"reason,omitempty"`
	DocumentURL     string  `json:"document_url,omitempty"`
	DocumentObject  string  `json:"document_object,omitempty"`
	ConsultationFee float64 `json:"consultation_fee,omitempty"`
	OTP             string  `json:"otp,omitempty"`
}
