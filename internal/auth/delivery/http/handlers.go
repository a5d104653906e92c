package http

import (
	"github.com/gin-gonic/gin"

	"task-time-tracker/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account details"
// @Success     201 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUserResp(output.User))
}

// Login godoc
// @Summary     Log in
// @Description Issues a bearer token for subsequent requests. Unknown email and wrong password fail identically.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, loginResp{Token: output.Token, User: newUserResp(output.User)})
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Security    BearerAuth
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, sessionToken(c)); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// RequestPasswordReset godoc
// @Summary     Request a password reset link
// @Description Always returns 200; whether the email has an account is not revealed.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body resetRequestReq true "Account email"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/password/reset-request [POST]
func (h *handler) RequestPasswordReset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetRequestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RequestPasswordReset(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RequestPasswordReset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ResetPassword godoc
// @Summary     Reset the password with a mailed token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body resetReq true "Token and new password"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid or expired token"
// @Router      /api/v1/auth/password/reset [POST]
func (h *handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ResetPassword(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.ResetPassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
