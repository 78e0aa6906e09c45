package middleware

import (
	"github.com/gin-gonic/gin"

	"talenthub/models"
	"talenthub/services"
	"talenthub/utils"
)

const capabilitiesKey = "capabilities"

// Subscription resolves the account's plan to its capability set on every
// request. The plan is read from the user record each time rather than cached,
// so an upgrade takes effect on the next request.
func Subscription(users *models.UserModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		caps := services.CapabilitiesForPlan(services.PlanFree)
		if user, err := users.GetByID(userID); err == nil {
			caps = services.CapabilitiesForPlan(user.Plan)
		} else {
			utils.LogWarn("could not resolve subscription plan, defaulting to free", map[string]int{"user_id": userID})
		}
		c.Set(capabilitiesKey, caps)
		c.Next()
	}
}

// Caps returns the capability set resolved by Subscription.
func Caps(c *gin.Context) services.Capabilities {
	v, _ := c.Get(capabilitiesKey)
	caps, ok := v.(services.Capabilities)
	if !ok {
		return services.CapabilitiesForPlan(services.PlanFree)
	}
	return caps
}

// RequireFeature blocks requests whose plan lacks a feature flag.
func RequireFeature(check func(services.Capabilities) bool, feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !check(Caps(c)) {
			utils.ForbiddenError(c, "Your plan does not include "+feature)
			c.Abort()
			return
		}
		c.Next()
	}
}
