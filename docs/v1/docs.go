// Package v1 contém a documentação OpenAPI da API v1.
package v1

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/pessoa": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pessoa"
                ],
                "summary": "Lista todas as pessoas",
                "operationId": "listPessoasV1",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pessoa"
                ],
                "summary": "Cadastra uma pessoa",
                "operationId": "createPessoaV1",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Dados da pessoa",
                        "name": "pessoa",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AdicionarPessoaV1Request"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pessoa"
                ],
                "summary": "Altera uma pessoa",
                "operationId": "updatePessoaV1",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Dados da pessoa com id",
                        "name": "pessoa",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.EditarPessoaV1Request"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/pessoa/paginado": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pessoa"
                ],
                "summary": "Lista pessoas paginadas",
                "operationId": "listPessoasPaginadoV1",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "name": "pagina",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 10,
                        "name": "linhasPorPagina",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PaginatedResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/pessoa/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pessoa"
                ],
                "summary": "Busca uma pessoa",
                "operationId": "getPessoaV1",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID da pessoa",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pessoa"
                ],
                "summary": "Remove uma pessoa",
                "operationId": "deletePessoaV1",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "ID da pessoa",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                },
                "security": [
                    {
                        "CookieAuth": []
                    },
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/auth": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login; grava o cookie jwt_token",
                "operationId": "login",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credenciais",
                        "name": "credenciais",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.Envelope"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/dto.ProblemResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.AdicionarPessoaV1Request": {
            "type": "object",
            "required": [
                "nome",
                "dataNascimento",
                "cpf"
            ],
            "properties": {
                "nome": {
                    "type": "string",
                    "example": "Maria Silva",
                    "maxLength": 100
                },
                "email": {
                    "type": "string",
                    "example": "maria@email.com",
                    "maxLength": 255
                },
                "dataNascimento": {
                    "type": "string",
                    "example": "20/09/1998"
                },
                "cpf": {
                    "type": "string",
                    "example": "123.456.789-00"
                },
                "sexo": {
                    "type": "integer",
                    "example": 2,
                    "description": "1 = Masculino, 2 = Feminino"
                },
                "nacionalidade": {
                    "type": "integer",
                    "example": 1,
                    "description": "1 = Brasileira, 2 = Estrangeira"
                },
                "naturalidade": {
                    "type": "string",
                    "example": "SP"
                },
                "endereco": {
                    "type": "string",
                    "example": "Rua A, 10",
                    "maxLength": 255
                }
            }
        },
        "dto.EditarPessoaV1Request": {
            "type": "object",
            "required": [
                "id",
                "nome",
                "dataNascimento",
                "cpf"
            ],
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid"
                },
                "nome": {
                    "type": "string",
                    "example": "Maria Silva",
                    "maxLength": 100
                },
                "email": {
                    "type": "string",
                    "example": "maria@email.com",
                    "maxLength": 255
                },
                "dataNascimento": {
                    "type": "string",
                    "example": "20/09/1998"
                },
                "cpf": {
                    "type": "string",
                    "example": "123.456.789-00"
                },
                "sexo": {
                    "type": "integer",
                    "example": 2,
                    "description": "1 = Masculino, 2 = Feminino"
                },
                "nacionalidade": {
                    "type": "integer",
                    "example": 1,
                    "description": "1 = Brasileira, 2 = Estrangeira"
                },
                "naturalidade": {
                    "type": "string",
                    "example": "SP"
                },
                "endereco": {
                    "type": "string",
                    "example": "Rua A, 10",
                    "maxLength": 255
                }
            }
        },
        "dto.Envelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "data": {},
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.FieldErrorResponse": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                }
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "senha"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "admin@pessoas.com"
                },
                "senha": {
                    "type": "string",
                    "example": "admin123"
                }
            }
        },
        "dto.PaginatedResponse": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PessoaResponse"
                    }
                }
            }
        },
        "dto.PessoaResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nome": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "dataNascimento": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "sexo": {
                    "type": "string"
                },
                "nacionalidade": {
                    "type": "string"
                },
                "naturalidade": {
                    "type": "string"
                },
                "endereco": {
                    "type": "string"
                }
            }
        },
        "dto.ProblemResponse": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                },
                "instance": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.FieldErrorResponse"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        },
        "CookieAuth": {
            "type": "apiKey",
            "name": "jwt_token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo guarda as informações exportadas da documentação v1
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pessoas API v1",
	Description:      "Cadastro de pessoas",
	InfoInstanceName: "v1",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
