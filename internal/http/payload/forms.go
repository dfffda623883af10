package payload

import (
	"net/url"
	"newsroom/internal/core"

	"github.com/jellydator/validation"
)

type LoginForm struct {
	Username string
	Password string
}

func (f *LoginForm) FillFrom(values url.Values) {
	f.Username = values.Get("username")
	f.Password = values.Get("password")
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (f LoginForm) ToAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: f.Username,
		Password: f.Password,
	}
}

type RegisterForm struct {
	Username        string
	Password        string
	ConfirmPassword string
}

func (f *RegisterForm) FillFrom(values url.Values) {
	f.Username = values.Get("username")
	f.Password = values.Get("password")
	f.ConfirmPassword = values.Get("confirm_password")
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
		validation.Field(&f.ConfirmPassword, validation.Required),
	)
}

func (f RegisterForm) ToRegisterMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username:        f.Username,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
	}
}

type ArticleForm struct {
	Title   string
	Content string
	Author  string
}

func (f *ArticleForm) FillFrom(values url.Values) {
	f.Title = values.Get("title")
	f.Content = values.Get("content")
	f.Author = values.Get("author")
}

func (f ArticleForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
	)
}
