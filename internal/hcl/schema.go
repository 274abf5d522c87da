package hcl

// fileRoot is the top-level structure of a project file. Every block is
// optional; attributes left out keep their default value.
type fileRoot struct {
	Paths    *pathsBlock    `hcl:"paths,block"`
	Compiler *compilerBlock `hcl:"compiler,block"`
	Notify   *notifyBlock   `hcl:"notify,block"`
}

type pathsBlock struct {
	AssetsRoot *string  `hcl:"assets_root,optional"`
	Scenes     *string  `hcl:"scenes,optional"`
	Shaders    *string  `hcl:"shaders,optional"`
	Generated  *string  `hcl:"generated,optional"`
	Compiled   *string  `hcl:"compiled,optional"`
	Core       *string  `hcl:"core,optional"`
	Template   *string  `hcl:"template,optional"`
	Libraries  []string `hcl:"libraries,optional"`
}

type compilerBlock struct {
	Binary  *string `hcl:"binary,optional"`
	Profile *string `hcl:"profile,optional"`
}

type notifyBlock struct {
	URL       *string `hcl:"url,optional"`
	Namespace *string `hcl:"namespace,optional"`
	Event     *string `hcl:"event,optional"`
	Timeout   *string `hcl:"timeout,optional"`
}
