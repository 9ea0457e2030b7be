package validator

import "strings"

// ログインの入力を検証
func ValidateLogin(email string, phone string, password string, expiresInDays int, tokenName string) FieldErrors {
	errs := FieldErrors{}

	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	//emailかphoneのどちらか必須
	if email == "" && phone == "" {
		errs.Add("email", "The email or phone field is required.")
	}
	if email != "" && !isEmailLike(email) {
		errs.Add("email", "The email must be a valid email address.")
	}

	if password == "" {
		errs.Add("password", "The password field is required.")
	}

	//0はデフォルト（30日）扱い
	if expiresInDays != 0 && (expiresInDays < 1 || expiresInDays > 3650) {
		errs.Add("expires_in_days", "The expires in days must be between 1 and 3650.")
	}

	if len(tokenName) > 100 {
		errs.Add("token_name", "The token name may not be greater than 100 characters.")
	}

	return errs
}

// 会員登録の入力を検証
func ValidateCreateUser(name string, email string, phone string, password string) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "The name field is required.")
	}
	if len(name) > 255 {
		errs.Add("name", "The name may not be greater than 255 characters.")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "The email field is required.")
	} else if !isEmailLike(email) {
		errs.Add("email", "The email must be a valid email address.")
	}

	if len(phone) > 20 {
		errs.Add("phone", "The phone may not be greater than 20 characters.")
	}

	if password == "" {
		errs.Add("password", "The password field is required.")
	} else if len(password) < 8 {
		errs.Add("password", "The password must be at least 8 characters.")
	}

	return errs
}
