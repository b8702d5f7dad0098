package handler

import "github.com/99minutos/course-api/internal/pkg/validation"

// signupRequest is the body of POST /users.
type signupRequest struct {
	FirstName       jsonField `json:"firstName"`
	LastName        jsonField `json:"lastName"`
	EmailAddress    jsonField `json:"emailAddress"`
	Password        jsonField `json:"password"`
	ConfirmPassword jsonField `json:"confirmPassword"`
}

func (req *signupRequest) rules(r *validation.Rules) []validation.Field {
	return []validation.Field{
		r.Field("firstName", req.FirstName.ptr(),
			r.Exists(`"firstName" is required`),
			r.NotEmpty("Please enter your First Name")),
		r.Field("lastName", req.LastName.ptr(),
			r.Exists(`"lastName" is required`),
			r.NotEmpty("Please enter your Last Name")),
		r.Field("emailAddress", req.EmailAddress.ptr(),
			r.Exists(`"emailAddress" is required`),
			r.Email("Please Provide a valid Email Address")),
		r.Field("password", req.Password.ptr(),
			r.Exists(`"password" is required`),
			r.Length(8, 20, "Password length should be between 8 - 20 characters")),
		r.Field("confirmPassword", req.ConfirmPassword.ptr(),
			r.Equals(req.Password.ptr(), "Passwords do not match")),
	}
}

// currentUserResponse is the public view of the authenticated user.
type currentUserResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
