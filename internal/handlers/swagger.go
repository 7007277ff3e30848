package handlers

// @title Body Echo API
// @version 1.0
// @description Local HTTP front for the body echo function. The request body is decoded as JSON and echoed back.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name echo
// @tag.description JSON body echo
