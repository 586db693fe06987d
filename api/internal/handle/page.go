package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handle) Index(c *gin.Context) {
	page := strings.ReplaceAll(indexHTML, "__OG_IMAGE__", "/image/"+h.cfg.ImageFilename)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// The application page. Presentation only; nothing here feeds back into the
// pipeline. The rotating loading messages are a literal list cycled by a
// client-side timer.
const indexHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>サボり許可局 | Official Excuse Agency</title>
  <meta property="og:title" content="サボり許可局 | Official Excuse Agency">
  <meta property="og:image" content="__OG_IMAGE__">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="twitter:image" content="__OG_IMAGE__">
  <style>
    @import url('https://fonts.googleapis.com/css2?family=Shippori+Mincho:wght@700&display=swap');
    body { font-family: 'Shippori Mincho', serif; background-color: #f4f1ea; color: #2c2c2c; display: flex; flex-direction: column; align-items: center; justify-content: center; min-height: 100vh; margin: 0; padding: 20px; }
    .container { width: 100%; max-width: 600px; text-align: center; }
    h1 { font-size: 2rem; margin-bottom: 0.5rem; border-bottom: 2px solid #b91c1c; display: inline-block; padding-bottom: 10px; }
    .input-group { background: white; padding: 2rem; border: 1px solid #ccc; box-shadow: 4px 4px 0px rgba(0,0,0,0.1); margin-bottom: 2rem; }
    input { width: 80%; padding: 12px; margin-bottom: 1rem; }
    .btn { padding: 12px 30px; background: #2c2c2c; color: white; border: none; border-radius: 4px; cursor: pointer; }
    #loading { display: none; color: #5c4033; }
    #result-area { display: none; margin-top: 20px; }
    img { max-width: 100%; border: 1px solid #ccc; }
  </style>
</head>
<body>
  <div class="container">
    <h1>サボり許可局</h1>
    <div class="input-group">
      <p>申請理由</p>
      <input type="text" id="reason" maxlength="50" placeholder="例：働きたくない">
      <br>
      <button class="btn" onclick="generate()">申請を行う</button>
      <p id="loading"></p>
    </div>
    <div id="result-area">
      <h3>審査結果</h3>
      <img id="result-img" src="">
    </div>
  </div>
  <script>
    const loadingMessages = [
      '担当官が書類を確認しています…',
      '印鑑を探しています…',
      '決裁ルートを遡っています…',
      '前例を捏造しています…',
      '公印を温めています…'
    ];
    let loadingTimer = null;

    function startLoading() {
      const el = document.getElementById('loading');
      let i = 0;
      el.textContent = loadingMessages[0];
      el.style.display = 'block';
      loadingTimer = setInterval(() => {
        i = (i + 1) % loadingMessages.length;
        el.textContent = loadingMessages[i];
      }, 1500);
    }

    function stopLoading() {
      clearInterval(loadingTimer);
      document.getElementById('loading').style.display = 'none';
    }

    async function generate() {
      const reason = document.getElementById('reason').value;
      startLoading();
      try {
        const res = await fetch('/generate', { method: 'POST', body: JSON.stringify({ reason }) });
        if (!res.ok) {
          const err = await res.json();
          alert(err.error);
          return;
        }
        const blob = await res.blob();
        document.getElementById('result-img').src = URL.createObjectURL(blob);
        document.getElementById('result-area').style.display = 'block';
      } finally {
        stopLoading();
      }
    }
  </script>
</body>
</html>
`
