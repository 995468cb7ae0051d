package dto

// Identity is the typed value produced by token verification; it is the only
// shape user identity travels in past the auth layer.
type Identity struct {
	UserID string `json:"user_id"`
	UserNo uint   `json:"user_no"`
}

type SignupInput struct {
	ID       string `json:"id" binding:"required,max=10"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,max=10"`
	Gender   string `json:"gender" binding:"omitempty,oneof=M F X"`
	Age      int16  `json:"age" binding:"omitempty,gte=0,lte=150"`
}

type LoginInput struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserNo      uint   `json:"user_no"`
}
