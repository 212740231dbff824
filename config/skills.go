package config

var skills = []Skill{
	{ID: "go", Name: "go", Label: "Go", ShortDescription: "Services, CLIs and concurrent plumbing", Icon: "go"},
	{ID: "ts", Name: "typescript", Label: "TypeScript", ShortDescription: "Typed front ends and tooling", Icon: "ts"},
	{ID: "js", Name: "javascript", Label: "JavaScript", ShortDescription: "The language of the browser", Icon: "js"},
	{ID: "react", Name: "react", Label: "React", ShortDescription: "Component driven interfaces", Icon: "react"},
	{ID: "next", Name: "nextjs", Label: "Next.js", ShortDescription: "Server rendered React apps", Icon: "next"},
	{ID: "node", Name: "nodejs", Label: "Node.js", ShortDescription: "JavaScript on the server", Icon: "node"},
	{ID: "py", Name: "python", Label: "Python", ShortDescription: "Scripting, data and automation", Icon: "py"},
	{ID: "pg", Name: "postgres", Label: "PostgreSQL", ShortDescription: "Relational data done right", Icon: "pg"},
	{ID: "redis", Name: "redis", Label: "Redis", ShortDescription: "Caches, queues and counters", Icon: "redis"},
	{ID: "docker", Name: "docker", Label: "Docker", ShortDescription: "Reproducible containers", Icon: "docker"},
	{ID: "k8s", Name: "kubernetes", Label: "Kubernetes", ShortDescription: "Orchestrating containers at scale", Icon: "k8s"},
	{ID: "aws", Name: "aws", Label: "AWS", ShortDescription: "Cloud infrastructure", Icon: "aws"},
	{ID: "git", Name: "git", Label: "Git", ShortDescription: "Version control", Icon: "git"},
	{ID: "linux", Name: "linux", Label: "Linux", ShortDescription: "Home for everything above", Icon: "linux"},
	{ID: "sass", Name: "sass", Label: "Sass", ShortDescription: "Stylesheets with structure", Icon: "sass"},
	{ID: "tw", Name: "tailwind", Label: "Tailwind CSS", ShortDescription: "Utility first styling", Icon: "tw"},
	{ID: "gsap", Name: "gsap", Label: "GSAP", ShortDescription: "Timeline and scroll animation", Icon: "gsap"},
	{ID: "three", Name: "threejs", Label: "Three.js", ShortDescription: "3D in the browser", Icon: "three"},
	{ID: "graphql", Name: "graphql", Label: "GraphQL", ShortDescription: "Typed APIs", Icon: "graphql"},
	{ID: "ws", Name: "websocket", Label: "WebSocket", ShortDescription: "Realtime messaging", Icon: "ws"},
}
