// Package http provides Laravel-style request and response helpers.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	// Bind JSON / form body into a struct
//	var payload struct {
//	    CURP string `json:"curp"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	code := req.RouteParam("curp")    // chi route param
//	req.IP()                          // peer address, port stripped
//	req.IsJSON()                      // JSON sent or accepted
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)             // 200 {"data": ...}
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.MethodNotAllowed()        // 405 {"message": "Method not allowed."}
//	res.TooManyRequests()         // 429 {"message": "Too Many Attempts."}
//	res.ValidationError(errs)     // 422 {"errors": {"field": ["msg"]}}
//
// # ViewEngine
//
//	engine := gohttp.NewViewEngine(resources.Views(), ".html", nil)
//	engine.View(w, http.StatusOK, "views/index", data)
package http
