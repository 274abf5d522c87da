package hcl

import (
	"fmt"
	"time"

	"github.com/vk/sdfc/internal/config"
)

// translate overlays the decoded project file onto model.
func translate(root *fileRoot, model *config.Model) error {
	if p := root.Paths; p != nil {
		setString(&model.Paths.AssetsRoot, p.AssetsRoot)
		setString(&model.Paths.Scenes, p.Scenes)
		setString(&model.Paths.Shaders, p.Shaders)
		setString(&model.Paths.Generated, p.Generated)
		setString(&model.Paths.Compiled, p.Compiled)
		setString(&model.Paths.Core, p.Core)
		setString(&model.Paths.Template, p.Template)
		if p.Libraries != nil {
			model.Paths.Libraries = p.Libraries
		}
	}

	if c := root.Compiler; c != nil {
		setString(&model.Compiler.Binary, c.Binary)
		setString(&model.Compiler.Profile, c.Profile)
	}

	if n := root.Notify; n != nil {
		setString(&model.Notify.URL, n.URL)
		setString(&model.Notify.Namespace, n.Namespace)
		setString(&model.Notify.Event, n.Event)
		if n.Timeout != nil {
			timeout, err := time.ParseDuration(*n.Timeout)
			if err != nil {
				return fmt.Errorf("notify.timeout: %w", err)
			}
			model.Notify.Timeout = timeout
		}
	}

	if model.Compiler.Binary == "" {
		return fmt.Errorf("compiler.binary must not be empty")
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
