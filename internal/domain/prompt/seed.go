package prompt

// StaticPrompts is the built-in seed collection. It backs an empty local
// store, bootstraps an empty remote table, and is the in-memory fallback when
// the remote backend cannot be reached.
var StaticPrompts = []Record{
	{
		ID:         "static-python",
		Title:      "Python Code Review Master",
		Desc:       "Act as a senior Python developer and review the following code for smells and performance.",
		Prompt:     "Act as a senior Python developer. Review the following code, point out code smells, suggest improvements for performance and readability, and explain the reasoning behind each suggestion.",
		Category:   CategoryCode,
		Complexity: ComplexityAdvanced,
		Type:       PresentationIcon,
		Icon:       "fa-brands fa-python",
		IsCustom:   false,
	},
	{
		ID:         "static-art-3d",
		Title:      "3D Abstract Fluid Wallpaper",
		Desc:       "Generate a 3D abstract fluid art background, vibrant neon colors...",
		Prompt:     "Generate a 3D abstract fluid art background, vibrant neon colors, nano banana style rendering, 8k resolution, smooth gradients, highly detailed, octane render.",
		Category:   CategoryArt,
		Complexity: ComplexityIntermediate,
		Type:       PresentationImage,
		Image:      "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e?q=80&w=800&auto=format&fit=crop",
		IsCustom:   false,
	},
	{
		ID:         "static-react-comp",
		Title:      "React Component Generator",
		Desc:       "Act as a Senior React Developer. Create a responsive Navbar component...",
		Prompt:     "Act as a Senior React Developer. Create a responsive Navbar component using Tailwind CSS, supporting dark mode toggle, including mobile menu logic, written in TypeScript.",
		Category:   CategoryCode,
		Complexity: ComplexityAdvanced,
		Type:       PresentationImage,
		Image:      "https://images.unsplash.com/photo-1555066931-4365d14bab8c?q=80&w=800&auto=format&fit=crop",
		IsCustom:   false,
	},
	{
		ID:         "static-writing-review",
		Title:      "Viral Tech Review Copy",
		Desc:       "Write a tech review for a new AI gadget. Use a professional yet engaging tone...",
		Prompt:     "Write a tech review for a new AI gadget. Use a professional yet engaging tone, structured with Pros/Cons, technical specs, and a final verdict. Target audience: Tech enthusiasts.",
		Category:   CategoryWriting,
		Complexity: ComplexityBeginner,
		Type:       PresentationImage,
		Image:      "https://images.unsplash.com/photo-1455390582262-044cdead277a?q=80&w=800&auto=format&fit=crop",
		IsCustom:   false,
	},
}

// SeedCopy returns a fresh slice so callers can mutate their copy freely.
func SeedCopy() []Record {
	out := make([]Record, len(StaticPrompts))
	copy(out, StaticPrompts)
	return out
}
