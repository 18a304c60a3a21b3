package servers

//go:generate oapi-codegen --config=cfg.yaml openapi.yaml
