// Package curp decomposes and checks Mexican CURP codes.
//
// A CURP (Clave Única de Registro de Población) is an 18-character
// fixed-format code. Analysis runs in two stages:
//
//	tokens := curp.Tokenize("GOMC800101HDFLRS09")  // lexical: 13 labeled fields
//	msgs   := curp.Validate("GOMC800101HDFLRS09")  // syntactic: ordered messages
//	ok     := curp.IsValid(msgs)                   // exactly the success sentinel
//
// Analyze runs both stages and returns a Result:
//
//	res := curp.Analyze(strings.ToUpper(input))
//	for _, t := range res.Tokens { ... }
//	if !res.IsValid() { ... res.Errors ... }
//
// Input is expected uppercase; the package never changes case. Offsets count
// characters, not bytes. The final character is only checked for being a
// letter or digit: the official check-digit algorithm is not computed.
//
// Every function is pure and safe for concurrent use.
package curp
