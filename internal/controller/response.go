package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ResponseEnvelope is the uniform response of every endpoint. Errors travel
// in `msg` with `ok` false; handlers never leak a stack trace past here.
type ResponseEnvelope struct {
	OK      bool        `json:"ok"`
	Msg     string      `json:"msg"`
	Payload interface{} `json:"payload,omitempty"`
}

func respondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, ResponseEnvelope{OK: true, Payload: payload})
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ResponseEnvelope{OK: false, Msg: msg})
}

func respondParameterErrors(c *gin.Context, pel *ParameterErrorList) {
	respondError(c, http.StatusBadRequest, strings.Join(*pel, " "))
}
