package template

// Static configuration files written alongside the rendered templates.
// These take no context and so skip the rendering pipeline.

// TSConfig returns the TypeScript compiler configuration for generated
// backends: ES2020 target, strict mode, src-rooted sources compiled to
// dist/. Other tooling depends on this exact shape.
func TSConfig() string {
	return `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "commonjs",
    "rootDir": "./src",
    "outDir": "./dist",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true
  },
  "include": ["src/**/*"]
}
`
}

// Gitignore returns the ignore file for generated backends.
func Gitignore() string {
	return `node_modules/
dist/
.env
`
}

// ESLintRC returns the ESLint configuration for the eslint feature.
// TypeScript backends get the typescript-eslint parser wiring.
func ESLintRC(typescript bool) string {
	if typescript {
		return `{
  "env": { "node": true, "es2021": true },
  "parser": "@typescript-eslint/parser",
  "plugins": ["@typescript-eslint"],
  "extends": ["eslint:recommended", "plugin:@typescript-eslint/recommended"],
  "parserOptions": { "ecmaVersion": 2021, "sourceType": "module" }
}
`
	}
	return `{
  "env": { "node": true, "es2021": true },
  "extends": "eslint:recommended",
  "parserOptions": { "ecmaVersion": 2021, "sourceType": "module" }
}
`
}

// PrettierRC returns the Prettier configuration for the prettier feature.
func PrettierRC() string {
	return `{
  "semi": true,
  "singleQuote": true,
  "trailingComma": "es5",
  "printWidth": 80
}
`
}
