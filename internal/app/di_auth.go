package app

import (
	authService "github.com/allisson/sealedfields/internal/auth/service"
)

// HookTokenService returns the hook token service.
func (c *Container) HookTokenService() authService.HookTokenService {
	c.hookTokenServiceInit.Do(func() {
		c.hookTokenService = authService.NewHookTokenService()
	})
	return c.hookTokenService
}
